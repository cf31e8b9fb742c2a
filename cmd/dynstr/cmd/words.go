package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/buffer"
	dserror "github.com/msto63/dynstr/core/error"
)

var wordsJoin bool

var wordsCmd = &cobra.Command{
	Use:   "words FILE",
	Short: "Read a file word by word into a buffer",
	Long: `Reads FILE one whitespace-delimited word at a time through a dynstr
buffer. By default each word is printed on its own line; with --join the
words are accumulated in the buffer and printed once, space-separated.`,
	Args: cobra.ExactArgs(1),
	RunE: runWords,
}

func init() {
	wordsCmd.Flags().BoolVar(&wordsJoin, "join", false, "accumulate words and print once")
	rootCmd.AddCommand(wordsCmd)
}

func runWords(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}
	logger := newLogger(cfg).WithModule("words")

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

	r := bufio.NewReader(f)
	count := 0
	for {
		err := b.ReadWord(r)
		if dserror.HasCode(err, dserror.CodeEmpty) {
			break
		}
		if err != nil {
			logger.LogError(err)
			return err
		}
		count++

		if !wordsJoin {
			fmt.Println(b.String())
			b.Clear()
		}
	}

	if wordsJoin {
		fmt.Println(b.String())
	}
	logger.Debug("file read", map[string]interface{}{"words": count})
	return nil
}
