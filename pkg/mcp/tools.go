package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"tasklens/pkg/query"
	"tasklens/pkg/stats"
	"tasklens/pkg/task"
	"tasklens/pkg/vault"
)

// QueryTool answers task queries against the vault.
type QueryTool struct {
	cache *vault.Cache
	vault *VaultResolver
}

// NewQueryTool creates the query_tasks tool backed by cache.
func NewQueryTool(cache *vault.Cache, resolver *VaultResolver) *QueryTool {
	return &QueryTool{cache: cache, vault: resolver}
}

// Definition describes the query_tasks tool and its parameters.
func (qt *QueryTool) Definition() mcp.Tool {
	return mcp.NewTool("query_tasks",
		mcp.WithDescription("Query tasks from an Obsidian vault with optional filters. "+
			"Date parameters accept YYYY-MM-DD or relative dates like 'today', 'tomorrow', '+7 days'."),
		mcp.WithString("vault_path",
			mcp.Description("Absolute path to the vault. Falls back to the TASKLENS_VAULT_PATH environment variable.")),
		mcp.WithString("status",
			mcp.Description("Filter by status: open, completed or cancelled."),
			mcp.Enum("open", "completed", "cancelled")),
		mcp.WithString("priority",
			mcp.Description("Filter by priority: highest, high, medium, low or lowest."),
			mcp.Enum("highest", "high", "medium", "low", "lowest")),
		mcp.WithString("due",
			mcp.Description("Keep only tasks due exactly on this date.")),
		mcp.WithBoolean("overdue",
			mcp.Description("Keep only open tasks whose due date has passed.")),
		mcp.WithString("tag",
			mcp.Description("Keep only tasks carrying this tag.")),
		mcp.WithString("due_after",
			mcp.Description("Keep only tasks due on or after this date.")),
		mcp.WithString("due_before",
			mcp.Description("Keep only tasks due on or before this date.")),
		mcp.WithString("scheduled_after",
			mcp.Description("Keep only tasks scheduled on or after this date.")),
		mcp.WithString("scheduled_before",
			mcp.Description("Keep only tasks scheduled on or before this date.")),
	)
}

// Handle runs a query and returns the matching tasks as JSON.
func (qt *QueryTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := qt.vault.Resolve(req.GetString("vault_path", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	today := time.Now()
	filter := &query.Filter{
		Overdue: req.GetBool("overdue", false),
	}
	if tag := req.GetString("tag", ""); tag != "" {
		filter.Tags = []string{tag}
	}

	if s := req.GetString("status", ""); s != "" {
		status, err := task.ParseStatus(s)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		filter.Status = &status
	}
	if p := req.GetString("priority", ""); p != "" {
		priority, err := task.ParsePriority(p)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		filter.Priority = &priority
	}

	dateParams := []struct {
		name string
		dest **time.Time
	}{
		{"due", &filter.Due},
		{"due_after", &filter.DueAfter},
		{"due_before", &filter.DueBefore},
		{"scheduled_after", &filter.ScheduledAfter},
		{"scheduled_before", &filter.ScheduledBefore},
	}
	for _, dp := range dateParams {
		expr := req.GetString(dp.name, "")
		if expr == "" {
			continue
		}
		d, err := query.ResolveDate(expr, today)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s: %v", dp.name, err)), nil
		}
		*dp.dest = &d
	}

	all, err := qt.cache.AllTasks(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	matched := filter.Apply(all, today)
	payload, err := json.MarshalIndent(toTaskJSONList(matched), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding tasks: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

// StatisticsTool reports aggregate statistics for the vault.
type StatisticsTool struct {
	cache *vault.Cache
	vault *VaultResolver
}

// NewStatisticsTool creates the get_statistics tool backed by cache.
func NewStatisticsTool(cache *vault.Cache, resolver *VaultResolver) *StatisticsTool {
	return &StatisticsTool{cache: cache, vault: resolver}
}

// Definition describes the get_statistics tool.
func (st *StatisticsTool) Definition() mcp.Tool {
	return mcp.NewTool("get_statistics",
		mcp.WithDescription("Get task statistics for an Obsidian vault: totals, "+
			"status/priority/tag breakdowns, overdue and upcoming counts, top tags "+
			"and a due-date distribution."),
		mcp.WithString("vault_path",
			mcp.Description("Absolute path to the vault. Falls back to the TASKLENS_VAULT_PATH environment variable.")),
	)
}

// Handle collects vault statistics and returns them as JSON.
func (st *StatisticsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	root, err := st.vault.Resolve(req.GetString("vault_path", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	all, err := st.cache.AllTasks(root)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary := stats.Collect(all, time.Now())
	payload, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding statistics: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
