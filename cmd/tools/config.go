package tools

import (
	"fmt"

	"github.com/Manu343726/mipsdis/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration resulting from defaults, the config file, MIPSDIS_* environment
variables and command line flags, as YAML. The output can be used as a config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}

		text, err := cfg.YAML()
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), text)
		return nil
	},
}

func init() {
	ToolsCmd.AddCommand(configCmd)
}
