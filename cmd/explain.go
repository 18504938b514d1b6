package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Manu343726/mipsdis/pkg/isa"
	"github.com/Manu343726/mipsdis/pkg/listing"
	"github.com/Manu343726/mipsdis/pkg/repl"
	"github.com/Manu343726/mipsdis/pkg/utils"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <word>...",
	Short: "Show the bit fields of instruction words",
	Long: `Decodes each instruction word and prints its bit fields, the meaning of each field
and the resulting assembly.

Words can be written in hex (0x...), binary (0b...), octal (0o...) or decimal.

Example:
  mipsdis explain 0x00853020 0x08000010`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return explain(cmd.OutOrStdout(), args)
	},
}

var ErrUnexplainedWords = errors.New("some words could not be explained")

func init() {
	RootCmd.AddCommand(explainCmd)
}

// Prints the inline diagnostic of a word that could not be explained
func explainFailure(out io.Writer, subject string, err error) {
	diagnostic := fmt.Sprintf("%v  # %v", subject, err)
	if !color.NoColor {
		diagnostic = utils.HighlightError(diagnostic)
	}

	fmt.Fprintln(out, diagnostic)
}

func explain(out io.Writer, words []string) error {
	failed := 0

	for i, text := range words {
		if i > 0 {
			fmt.Fprintln(out)
		}

		word, err := repl.ParseWord(text)
		if err != nil {
			failed++
			explainFailure(out, text, err)
			continue
		}

		explanation, err := isa.Explain(word)
		if err != nil {
			failed++
			explainFailure(out, utils.FormatUintHex(uint64(word), 8), err)
			continue
		}

		if cfg.Annotate {
			instruction, _ := isa.Decode(word)
			if annotation := listing.Annotation(instruction); annotation != "" {
				explanation = fmt.Sprintf("%v  # %v", explanation, annotation)
			}
		}

		if !color.NoColor {
			lines := strings.Split(explanation, "\n")
			lines[len(lines)-1] = utils.HighlightAssembly(lines[len(lines)-1])
			explanation = strings.Join(lines, "\n")
		}

		fmt.Fprintln(out, explanation)
	}

	if failed > 0 {
		return utils.MakeError(ErrUnexplainedWords, "%v of %v words failed", failed, len(words))
	}

	return nil
}
