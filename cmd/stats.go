package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tasklens/pkg/stats"
	"tasklens/pkg/vault"
)

var (
	statsVault  string
	statsFormat string
)

var statsCmd = &cobra.Command{
	Use:   "stats [vault]",
	Short: "Show task statistics for a vault",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsVault, "vault", "", "Path to the Obsidian vault")
	statsCmd.Flags().StringVar(&statsFormat, "format", "human", "Output format: human or json")
}

func runStats(cmd *cobra.Command, args []string) error {
	vaultArg := statsVault
	if len(args) > 0 {
		vaultArg = args[0]
	}

	config := loadTasklensConfig(".")
	root, err := resolveVault(vaultArg, config)
	if err != nil {
		return err
	}

	cache := vault.NewCache(newParser(config))
	all, err := cache.AllTasks(root)
	if err != nil {
		return err
	}

	summary := stats.Collect(all, time.Now())

	switch statsFormat {
	case "json":
		payload, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(payload))
	case "human":
		printSummary(summary)
	default:
		return fmt.Errorf("unknown format %q (use human or json)", statsFormat)
	}

	return nil
}

func printSummary(s *stats.Summary) {
	fmt.Printf("📊 Task Statistics\n")
	fmt.Printf("   Total tasks: %d (in %d files)\n", s.Total, s.FilesWithTasks)

	fmt.Printf("\n   By status:\n")
	for _, name := range []string{"open", "completed", "cancelled"} {
		if n := s.ByStatus[name]; n > 0 {
			fmt.Printf("     %-10s %d\n", name, n)
		}
	}

	fmt.Printf("\n   By priority:\n")
	for _, name := range []string{"highest", "high", "medium", "low", "lowest"} {
		if n := s.ByPriority[name]; n > 0 {
			fmt.Printf("     %-10s %d\n", name, n)
		}
	}

	fmt.Printf("\n   Overdue:        %d\n", s.Overdue)
	fmt.Printf("   Due today:      %d\n", s.DueToday)
	fmt.Printf("   Due this week:  %d\n", s.DueThisWeek)
	fmt.Printf("   Due this month: %d\n", s.DueThisMonth)
	fmt.Printf("   With dependencies: %d\n", s.WithDependencies)
	fmt.Printf("   With recurrence:   %d\n", s.WithRecurrence)

	if len(s.TopTags) > 0 {
		fmt.Printf("\n   Top tags:\n")
		for _, tc := range s.TopTags {
			fmt.Printf("     #%-15s %d\n", tc.Tag, tc.Count)
		}
	}

	d := s.DateDistribution
	fmt.Printf("\n   Due date distribution:\n")
	fmt.Printf("     past: %d  today: %d  this week: %d  this month: %d  future: %d  no due date: %d\n",
		d.Past, d.Today, d.ThisWeek, d.ThisMonth, d.Future, d.NoDueDate)
}
