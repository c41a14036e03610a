package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Export and import the event log",
}

var dataExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the full event log as JSON",
	Long: `Write every mood, activity and sleep entry as a JSON archive, to the
given file or to stdout when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDataExport,
}

var dataImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load entries from a JSON archive",
	Long: `Validate and append every entry from a JSON archive produced by
'moodwatch data export'. Nothing is written unless the whole archive
validates.`,
	Args: cobra.ExactArgs(1),
	RunE: runDataImport,
}

func init() {
	dataCmd.AddCommand(dataExportCmd)
	dataCmd.AddCommand(dataImportCmd)
	rootCmd.AddCommand(dataCmd)
}

func runDataExport(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 0 {
		return s.db.ExportArchive(os.Stdout)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := s.db.ExportArchive(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("exporting: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Println("Exported event log to", args[0])
	return nil
}

func runDataImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening archive: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	count, err := s.db.ImportArchive(f)
	if err != nil {
		return fmt.Errorf("importing: %w", err)
	}

	fmt.Printf("Imported %d entries from %s\n", count, args[0])
	return nil
}
