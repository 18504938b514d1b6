package cmd

import (
	"io"
	"os"

	"github.com/Manu343726/mipsdis/pkg/repl"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive instruction decoder",
	Long: `Starts an interactive session where each line of input is decoded as one or more instruction words.

Type :help inside the session for the list of commands.`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	RootCmd.AddCommand(replCmd)
}

// Adapts liner prompt aborts (Ctrl+C) into end of input
type linerReader struct {
	state *liner.State
}

func (r linerReader) Prompt(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", io.EOF
	} else if err != nil {
		return "", err
	}

	r.state.AppendHistory(line)
	return line, nil
}

func runRepl(cmd *cobra.Command, args []string) error {
	session := repl.NewSession(repl.Options{
		Color:    !color.NoColor,
		Annotate: cfg.Annotate,
	})

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return session.Run(repl.NewScannerReader(cmd.InOrStdin(), nil), cmd.OutOrStdout())
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	return session.Run(linerReader{state: line}, cmd.OutOrStdout())
}
