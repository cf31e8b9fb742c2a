package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/buffer"
	dserror "github.com/msto63/dynstr/core/error"
)

var linesNumbered bool

var linesCmd = &cobra.Command{
	Use:   "lines FILE",
	Short: "Read a file line by line into a buffer",
	Long: `Reads FILE one line at a time through a dynstr buffer and prints
each line. A single read is bounded; overlong lines are split at the
bound and continue on the next read.`,
	Args: cobra.ExactArgs(1),
	RunE: runLines,
}

func init() {
	linesCmd.Flags().BoolVarP(&linesNumbered, "number", "n", false, "number the output lines")
	rootCmd.AddCommand(linesCmd)
}

func runLines(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}
	logger := newLogger(cfg).WithModule("lines")

	f, err := os.Open(args[0])
	if err != nil {
		printError("opening file", err)
		return err
	}
	defer f.Close()

	b, err := buffer.NewWithCapacity(cfg.Buffer.InitialCapacity)
	if err != nil {
		printError("creating buffer", err)
		return err
	}
	defer b.Destroy()

	// One shared reader keeps bytes buffered between bounded reads.
	r := bufio.NewReader(f)
	lineNo := 0
	for {
		err := b.ReadLine(r)
		if dserror.HasCode(err, dserror.CodeEmpty) {
			break
		}
		if err != nil {
			logger.LogError(err)
			return err
		}

		lineNo++
		if linesNumbered {
			fmt.Printf("%6d  %s\n", lineNo, b.String())
		} else {
			fmt.Println(b.String())
		}
	}

	logger.Debug("file read", map[string]interface{}{"lines": lineNo})
	return nil
}
