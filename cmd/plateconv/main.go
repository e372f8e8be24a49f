// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the plateconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the plateconv CLI.
var rootCmd = &cobra.Command{
	Use:   "plateconv",
	Short: "Convert plate drawing coordinates to key positions",
	Long: `plateconv converts the switch cutout rectangles extracted from the
OrthBall plate drawing into millimeter key-center positions for PCB layout.

The convert subcommand emits the position report; store records runs in a
local SQLite history so plate revisions can be compared.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./plateconv.yaml or ~/.config/plateconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("plateconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "plateconv"))
		}
	}

	viper.SetEnvPrefix("PLATECONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
