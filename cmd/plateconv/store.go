// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/orthball/plateconv/internal/posdb"
	"github.com/orthball/plateconv/internal/report"
	"github.com/orthball/plateconv/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Record conversion runs in the position history database",
	Long: `Store converts the current plate tables and records the result as a
run in a local SQLite database. Use subcommands to list recorded runs or
re-emit a stored run.`,
	RunE: runStore,
}

func runStore(cmd *cobra.Command, args []string) error {
	r, err := report.Build()
	if err != nil {
		return err
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Record(context.Background(), r)
	if err != nil {
		return err
	}
	fmt.Printf("Recorded run %s (%d keys)\n", id, r.Total)
	return nil
}

// --- list subcommand ---

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded conversion runs",
	RunE:  runStoreList,
}

func runStoreList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-4s  %-4s  %s\n", "Run", "Recorded", "MX", "Choc", "Total")
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%-36s  %-20s  %-4d  %-4d  %d\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.TotalMX, r.TotalChoc, r.Total)
	}
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-emit a recorded run as JSON or YAML",
	RunE:  runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	runID, _ := cmd.Flags().GetString("run")
	if runID == "" {
		return fmt.Errorf("run ID required: use --run")
	}

	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	r, err := store.Export(context.Background(), runID)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json", "":
		return report.FormatJSON(r, os.Stdout)
	case "yaml":
		return report.FormatYAML(r, os.Stdout)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*posdb.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("store.db_path")
	}
	return posdb.Open(types.StoreConfig{DBPath: dbPath})
}

func init() {
	// Shared flag on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("db", "", "position history database file (default plateconv.db)")

	storeExportCmd.Flags().String("run", "", "run ID to export")
	storeExportCmd.Flags().String("format", "json", "export format: json or yaml")

	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeExportCmd)

	rootCmd.AddCommand(storeCmd)
}
