package tasks

import (
	"math"
	"sort"
	"strings"
	"time"
)

// FilterAll is the sentinel meaning "no constraint" for equality filters.
const FilterAll = "all"

// Filter narrows a task list before sorting. Empty fields (or FilterAll)
// impose no constraint; Search matches title or description, case-insensitive.
type Filter struct {
	Status   string
	Priority string
	Category string
	Search   string
}

// SortSpec selects the comparison key and direction for the pipeline.
type SortSpec struct {
	By    string
	Order string // "asc" or "desc"; anything else means desc
}

// Pagination describes the slice of the filtered list that was returned.
type Pagination struct {
	Current    int `json:"current"`
	Total      int `json:"total"`
	Count      int `json:"count"`
	TotalTasks int `json:"totalTasks"`
}

// QueryResult is the output of the pipeline: one page of tasks plus counts.
type QueryResult struct {
	Items      []Task     `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}

var priorityRank = map[string]int{
	PriorityLow:    1,
	PriorityMedium: 2,
	PriorityHigh:   3,
}

// Query runs the fixed filter -> search -> sort -> paginate pipeline over a
// snapshot of one user's tasks. The input is never mutated; the sort is
// stable, so equal keys keep their insertion order. Out-of-range pages yield
// an empty page, not an error, and non-positive page/limit are clamped to
// the defaults.
func Query(records []Task, f Filter, sortSpec SortSpec, page, limit int) QueryResult {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	filtered := applyFilter(records, f)

	sorted := make([]Task, len(filtered))
	copy(sorted, filtered)
	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareTasks(sorted[i], sorted[j], sortSpec.By)
		if sortSpec.Order == "asc" {
			return cmp < 0
		}
		return cmp > 0
	})

	start := (page - 1) * limit
	end := start + limit
	items := []Task{}
	if start < len(sorted) {
		if end > len(sorted) {
			end = len(sorted)
		}
		items = append(items, sorted[start:end]...)
	}

	return QueryResult{
		Items: items,
		Pagination: Pagination{
			Current:    page,
			Total:      int(math.Ceil(float64(len(sorted)) / float64(limit))),
			Count:      len(items),
			TotalTasks: len(sorted),
		},
	}
}

func applyFilter(records []Task, f Filter) []Task {
	result := []Task{}
	search := strings.ToLower(f.Search)

	for _, t := range records {
		if f.Status != "" && f.Status != FilterAll && t.Status != f.Status {
			continue
		}
		if f.Priority != "" && f.Priority != FilterAll && t.Priority != f.Priority {
			continue
		}
		if f.Category != "" && f.Category != FilterAll && t.Category != f.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		result = append(result, t)
	}

	return result
}

// compareTasks is a total order per sort key: negative when a sorts before b
// ascending, zero when equal. Unknown keys compare equal, which leaves the
// stable sort preserving insertion order.
func compareTasks(a, b Task, sortBy string) int {
	switch sortBy {
	case "priority":
		return priorityRank[a.Priority] - priorityRank[b.Priority]
	case "dueDate":
		return compareInt64(dueDateMillis(a), dueDateMillis(b))
	case "createdAt":
		return compareInt64(a.CreatedAt.UnixMilli(), b.CreatedAt.UnixMilli())
	case "updatedAt":
		return compareInt64(a.UpdatedAt.UnixMilli(), b.UpdatedAt.UnixMilli())
	case "id":
		return compareInt64(a.ID, b.ID)
	case "title":
		return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	case "description":
		return strings.Compare(strings.ToLower(a.Description), strings.ToLower(b.Description))
	case "category":
		return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
	case "status":
		return strings.Compare(strings.ToLower(a.Status), strings.ToLower(b.Status))
	default:
		return 0
	}
}

// dueDateMillis treats a missing due date as epoch 0, which sorts before any
// real date ascending.
func dueDateMillis(t Task) int64 {
	if t.DueDate == nil {
		return 0
	}
	return t.DueDate.UnixMilli()
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ComputeStats aggregates one user's full task list for the dashboard.
// Priority counts only consider non-completed tasks; a task is overdue when
// it has a due date in the past and is not completed.
func ComputeStats(records []Task, now time.Time) Stats {
	stats := Stats{Total: len(records)}

	for _, t := range records {
		switch t.Status {
		case StatusCompleted:
			stats.Completed++
		case StatusInProgress:
			stats.InProgress++
		case StatusTodo:
			stats.Todo++
		}

		if t.Status != StatusCompleted {
			if t.DueDate != nil && t.DueDate.Before(now) {
				stats.Overdue++
			}

			switch t.Priority {
			case PriorityHigh:
				stats.HighPriority++
			case PriorityMedium:
				stats.MediumPriority++
			case PriorityLow:
				stats.LowPriority++
			}
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}

	return stats
}
