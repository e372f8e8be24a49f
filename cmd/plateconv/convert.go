package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orthball/plateconv/internal/report"
	"github.com/orthball/plateconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the plate cutout tables and emit the position report",
	Long: `Convert parses the extracted cutout rectangles, maps each center into
millimeter space, and writes the sorted position report. JSON goes to
standard output unless --output names a file.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := outputConfig(cmd)

	r, err := report.Build()
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if cfg.Path != "" {
		f, err := os.Create(cfg.Path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch cfg.Format {
	case types.OutputJSON, "":
		return report.FormatJSON(r, w)
	case types.OutputYAML:
		return report.FormatYAML(r, w)
	case types.OutputTable:
		report.FormatTable(r, w)
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use json, yaml, or table", cfg.Format)
	}
}

// outputConfig resolves output settings from flags, falling back to config
// file values for the defaults.
func outputConfig(cmd *cobra.Command) types.OutputConfig {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString("output.format")
	}
	path, _ := cmd.Flags().GetString("output")

	return types.OutputConfig{
		Format: types.OutputFormat(format),
		Path:   path,
	}
}

func init() {
	convertCmd.Flags().String("format", "", "output format: json, yaml, or table (default json)")
	convertCmd.Flags().String("output", "", "write the report to a file instead of stdout")

	rootCmd.AddCommand(convertCmd)
}
