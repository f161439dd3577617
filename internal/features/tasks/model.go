// ================== internal/features/tasks/model.go ==================
package tasks

import "time"

// Task status values
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task priority values
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task represents a task item
// @Description Task item with status, priority and optional due date
type Task struct {
	ID          int64      `json:"id" example:"1"`
	UserID      string     `json:"userId" example:"507f1f77bcf86cd799439011"`
	Title       string     `json:"title" example:"Write report"`
	Description string     `json:"description" example:"Quarterly numbers"`
	Status      string     `json:"status" example:"todo" enums:"todo,in-progress,completed"`
	Priority    string     `json:"priority" example:"medium" enums:"low,medium,high"`
	Category    string     `json:"category" example:"work"`
	DueDate     *time.Time `json:"dueDate,omitempty" example:"2023-12-31T23:59:59Z"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// CreateTaskRequest represents task creation data
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required" example:"Write report"`
	Description string     `json:"description" example:"Quarterly numbers"`
	Status      string     `json:"status" example:"todo" enums:"todo,in-progress,completed"`
	Priority    string     `json:"priority" example:"medium" enums:"low,medium,high"`
	Category    string     `json:"category" example:"work"`
	DueDate     *time.Time `json:"dueDate" example:"2023-12-31T23:59:59Z"`
}

// UpdateTaskRequest represents task update data; nil fields are left untouched
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	Category    *string    `json:"category"`
	DueDate     *time.Time `json:"dueDate"`
}

// Stats summarizes one user's tasks for the dashboard
type Stats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	InProgress     int `json:"inProgress"`
	Todo           int `json:"todo"`
	Overdue        int `json:"overdue"`
	HighPriority   int `json:"highPriority"`
	MediumPriority int `json:"mediumPriority"`
	LowPriority    int `json:"lowPriority"`
	CompletionRate int `json:"completionRate"`
}
