package tools

import (
	"fmt"
	"os"
	"strings"

	"github.com/Manu343726/mipsdis/pkg/isa"
	"github.com/Manu343726/mipsdis/pkg/utils"
	"github.com/spf13/cobra"
)

var supportedModules = map[string]func() string{
	"isa": isa.DocString,
}

var docsCmd = &cobra.Command{
	Use:   "docs module",
	Short: "Show mipsdis documentation",
	Long: `Dumps the documentation of the specified mipsdis module.
By default the tool dumps the documentation to stdout, but it can be redirected to a file using the --output flag.

Supported modules:
` + strings.Join(utils.Map(utils.SortedKeys(supportedModules), func(module string) string { return "  " + module }), "\n"),
	Args:      cobra.MatchAll(cobra.OnlyValidArgs, cobra.ExactArgs(1)),
	ValidArgs: utils.SortedKeys(supportedModules),
	RunE: func(cmd *cobra.Command, args []string) error {
		documentation := supportedModules[args[0]]()

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			fmt.Fprintln(cmd.OutOrStdout(), documentation)
			return nil
		}

		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("error creating file: %w", err)
		}
		defer file.Close()

		_, err = fmt.Fprintln(file, documentation)
		return err
	},
}

func init() {
	ToolsCmd.AddCommand(docsCmd)
	docsCmd.Flags().StringP("output", "o", "", "Output file. If not specified, the documentation is dumped to stdout.")
}
