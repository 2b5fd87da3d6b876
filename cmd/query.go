package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tasklens/pkg/query"
	"tasklens/pkg/task"
	"tasklens/pkg/vault"
)

var (
	queryVault           string
	queryStatus          string
	queryPriority        string
	queryDue             string
	queryOverdue         bool
	queryTags            []string
	queryDueAfter        string
	queryDueBefore       string
	queryScheduledAfter  string
	queryScheduledBefore string
	queryVerbose         bool
)

var queryCmd = &cobra.Command{
	Use:   "query [vault]",
	Short: "Query tasks based on criteria",
	Long: `Query lists the tasks in a vault matching the given filters. All filters
combine with AND; date filters accept YYYY-MM-DD or relative dates like
'today', 'tomorrow', '+7 days'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryVault, "vault", "", "Path to the Obsidian vault")
	queryCmd.Flags().StringVar(&queryStatus, "status", "", "Filter by status (open, completed, cancelled)")
	queryCmd.Flags().StringVar(&queryPriority, "priority", "", "Filter by priority (highest, high, medium, low, lowest)")
	queryCmd.Flags().StringVar(&queryDue, "due", "", "Filter by exact due date")
	queryCmd.Flags().BoolVar(&queryOverdue, "overdue", false, "Only overdue open tasks")
	queryCmd.Flags().StringArrayVar(&queryTags, "tag", nil, "Filter by tag (repeatable, all must match)")
	queryCmd.Flags().StringVar(&queryDueAfter, "due-after", "", "Tasks due on or after this date")
	queryCmd.Flags().StringVar(&queryDueBefore, "due-before", "", "Tasks due on or before this date")
	queryCmd.Flags().StringVar(&queryScheduledAfter, "scheduled-after", "", "Tasks scheduled on or after this date")
	queryCmd.Flags().StringVar(&queryScheduledBefore, "scheduled-before", "", "Tasks scheduled on or before this date")
	queryCmd.Flags().BoolVarP(&queryVerbose, "verbose", "v", false, "Print the full raw text of matching tasks")
}

func runQuery(cmd *cobra.Command, args []string) error {
	vaultArg := queryVault
	if len(args) > 0 {
		vaultArg = args[0]
	}

	config := loadTasklensConfig(".")
	root, err := resolveVault(vaultArg, config)
	if err != nil {
		return err
	}

	today := time.Now()
	filter := &query.Filter{
		Overdue: queryOverdue,
		Tags:    queryTags,
	}

	if queryStatus != "" {
		status, err := task.ParseStatus(queryStatus)
		if err != nil {
			return err
		}
		filter.Status = &status
	}
	if queryPriority != "" {
		priority, err := task.ParsePriority(queryPriority)
		if err != nil {
			return err
		}
		filter.Priority = &priority
	}

	dateFlags := []struct {
		name  string
		value string
		dest  **time.Time
	}{
		{"--due", queryDue, &filter.Due},
		{"--due-after", queryDueAfter, &filter.DueAfter},
		{"--due-before", queryDueBefore, &filter.DueBefore},
		{"--scheduled-after", queryScheduledAfter, &filter.ScheduledAfter},
		{"--scheduled-before", queryScheduledBefore, &filter.ScheduledBefore},
	}
	for _, df := range dateFlags {
		if df.value == "" {
			continue
		}
		d, err := query.ResolveDate(df.value, today)
		if err != nil {
			return fmt.Errorf("%s: %w", df.name, err)
		}
		*df.dest = &d
	}

	cache := vault.NewCache(newParser(config))
	all, err := cache.AllTasks(root)
	if err != nil {
		return err
	}

	matched := filter.Apply(all, today)
	fmt.Printf("Found %d tasks matching your query.\n", len(matched))
	for _, t := range matched {
		if queryVerbose {
			fmt.Printf("- %s (in %s:%d)\n", t.RawText, t.FilePath, t.LineNumber)
		} else {
			fmt.Printf("- %s\n", t.Description)
		}
	}

	return nil
}
