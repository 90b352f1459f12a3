package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search tasks by keyword",
	Long:  `Case-insensitive substring search over task titles and notes.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().BoolP("all", "a", false, "Include completed tasks")
}

func runSearch(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")

	st, _, err := openStore()
	if err != nil {
		return err
	}
	collection, err := st.Load()
	if err != nil {
		return err
	}

	tasks := collection.Search(args[0], all)
	if len(tasks) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No tasks matching %q.\n", args[0])
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), renderTable(tasks))
	return nil
}
