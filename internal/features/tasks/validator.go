package tasks

import (
	"errors"
	"strings"
)

var validStatuses = map[string]bool{
	StatusTodo:       true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

var validPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

// ValidateTaskTitle validates the task title
func ValidateTaskTitle(title string) error {
	title = strings.TrimSpace(title)
	if len(title) < 1 {
		return errors.New("title must be between 1 and 200 characters")
	}
	if len(title) > 200 {
		return errors.New("title must be between 1 and 200 characters")
	}
	return nil
}

// ValidateDescription validates the task description
func ValidateDescription(description string) error {
	if len(description) > 1000 {
		return errors.New("description cannot exceed 1000 characters")
	}
	return nil
}

// ValidateStatus validates the status value
func ValidateStatus(status string) error {
	if !validStatuses[status] {
		return errors.New("status must be todo, in-progress, or completed")
	}
	return nil
}

// ValidatePriority validates the priority value
func ValidatePriority(priority string) error {
	if !validPriorities[priority] {
		return errors.New("priority must be low, medium, or high")
	}
	return nil
}

// ValidateCategory validates the free-text category
func ValidateCategory(category string) error {
	if len(category) > 50 {
		return errors.New("category cannot exceed 50 characters")
	}
	return nil
}

// ValidateCreateTaskRequest validates all fields in CreateTaskRequest
func ValidateCreateTaskRequest(req *CreateTaskRequest) error {
	if err := ValidateTaskTitle(req.Title); err != nil {
		return err
	}
	if err := ValidateDescription(req.Description); err != nil {
		return err
	}
	if req.Status != "" {
		if err := ValidateStatus(req.Status); err != nil {
			return err
		}
	}
	if req.Priority != "" {
		if err := ValidatePriority(req.Priority); err != nil {
			return err
		}
	}
	return ValidateCategory(req.Category)
}

// ValidateUpdateTaskRequest validates all non-nil fields in UpdateTaskRequest
func ValidateUpdateTaskRequest(req *UpdateTaskRequest) error {
	if req.Title != nil {
		if err := ValidateTaskTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Description != nil {
		if err := ValidateDescription(*req.Description); err != nil {
			return err
		}
	}
	if req.Status != nil {
		if err := ValidateStatus(*req.Status); err != nil {
			return err
		}
	}
	if req.Priority != nil {
		if err := ValidatePriority(*req.Priority); err != nil {
			return err
		}
	}
	if req.Category != nil {
		if err := ValidateCategory(*req.Category); err != nil {
			return err
		}
	}
	return nil
}
