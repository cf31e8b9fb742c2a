package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/buffer"
	dserror "github.com/msto63/dynstr/core/error"
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read lines from stdin with a bounded dynamic read",
	Long: `Reads standard input line by line using the growable dynamic read.
Each read is bounded by buffer.max_read_size from the configuration; a
line truncated at the bound continues on the next read, with a newline
sitting exactly on the bound consumed silently.`,
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}
	logger := newLogger(cfg).WithModule("read")

	r := bufio.NewReader(os.Stdin)
	reads := 0
	for {
		line, err := buffer.ReadDynamic(r, cfg.Buffer.MaxReadSize)
		if dserror.HasCode(err, dserror.CodeEmpty) {
			break
		}
		if err != nil {
			logger.LogError(err)
			return err
		}
		reads++
		fmt.Printf("%s (%d bytes)\n", line, len(line))
	}

	logger.Debug("stdin drained", map[string]interface{}{"reads": reads})
	return nil
}
