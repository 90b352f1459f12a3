package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jyang234/tinytask/internal/export"
	"github.com/jyang234/tinytask/internal/task"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks to JSON or CSV",
	Long: `Export tasks as a flat table.

Example:
  tinytask export --format json --output tasks_backup.json
  tinytask export --format csv --output tasks.csv --all`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "Export format: json or csv")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default tasks_<timestamp>.<format>)")
	exportCmd.Flags().BoolP("all", "a", false, "Include completed tasks")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	all, _ := cmd.Flags().GetBool("all")

	if format != "json" && format != "csv" {
		return fmt.Errorf("unsupported format %q (supported: json, csv)", format)
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	collection, err := st.Load()
	if err != nil {
		return err
	}

	tasks := collection.Filter(task.Query{IncludeDone: all, Today: task.DateOf(time.Now())})
	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tasks to export.")
		return nil
	}

	if output == "" {
		output = fmt.Sprintf("tasks_%s.%s", time.Now().Format("20060102_150405"), format)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer f.Close()

	rows := export.Flatten(tasks, cfg.Export.TagDelimiter)
	switch format {
	case "json":
		err = export.WriteJSON(f, rows)
	case "csv":
		err = export.WriteCSV(f, rows)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", len(rows), output)
	return nil
}
