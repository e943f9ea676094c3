package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "rustyparser",
	Short: "Tag-language command runner",
	Long:  "RustyParser parses a small self-closing/nested tag language into an element tree and runs the top-level element names as an external command.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("RUSTYPARSER")
	viper.AutomaticEnv()
}
