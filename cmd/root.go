package cmd

import (
	"fmt"
	"os"

	"github.com/Manu343726/mipsdis/cmd/tools"
	"github.com/Manu343726/mipsdis/pkg/config"
	"github.com/Manu343726/mipsdis/pkg/logging"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var cfgFile string

// Effective configuration and logger, available after the root PersistentPreRunE runs
var (
	cfg    config.Config
	logger *logging.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "mipsdis",
	Short: "A MIPS32 disassembler",
	Long: `mipsdis decodes 32-bit MIPS machine code words into assembly.

It disassembles binary files, explains the bit fields of single instruction words,
and provides an interactive decoder.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// Runs the root command. The log file is closed even if the command fails
func execute() error {
	defer teardown()
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(tools.ToolsCmd)
	cobra.OnInitialize(initConfig)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mipsdis.yaml)")
	flags.String("log-level", "warn", "Terminal log level: debug, info, warn, error")
	flags.String("log-file", "", "Also write JSON logs to this file")
	flags.String("color", "auto", "Colorize output: auto, always, never")
	flags.Bool("annotate", true, "Annotate REGIMM instructions with their branch condition")

	cobra.CheckErr(viper.BindPFlag(config.Key_LogLevel, flags.Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag(config.Key_LogFile, flags.Lookup("log-file")))
	cobra.CheckErr(viper.BindPFlag(config.Key_Color, flags.Lookup("color")))
	cobra.CheckErr(viper.BindPFlag(config.Key_Annotate, flags.Lookup("annotate")))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".mipsdis" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mipsdis")
	}

	config.BindEnv(viper.GetViper())

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setup(cmd *cobra.Command, args []string) error {
	var err error

	cfg, err = config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	logger, err = logging.New(os.Stderr, logging.Options{Level: level, File: cfg.Log.File})
	if err != nil {
		return err
	}

	color.NoColor = !useColor(cfg.Color, os.Stdout)
	return nil
}

func teardown() {
	if err := logger.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to close log file:", err)
	}
}

// Returns whether output written to the given file must be colorized
func useColor(mode string, out *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	return term.IsTerminal(int(out.Fd())) && os.Getenv("NO_COLOR") == ""
}
