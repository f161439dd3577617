// ================== internal/features/tasks/handler.go ==================
package tasks

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rverma-dev/inkwell/internal/pkg/pagination"
	"github.com/rverma-dev/inkwell/internal/pkg/response"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// List godoc
// @Summary List tasks
// @Description Filter, search, sort and paginate the authenticated user's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (todo, in-progress, completed, all)"
// @Param priority query string false "Filter by priority (low, medium, high, all)"
// @Param category query string false "Filter by category"
// @Param search query string false "Substring match on title or description"
// @Param sortBy query string false "Sort key (createdAt, updatedAt, dueDate, priority, title)" default(createdAt)
// @Param sortOrder query string false "asc or desc" default(desc)
// @Param page query int false "1-indexed page" default(1)
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} response.PaginatedResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /tasks [get]
func (h *Handler) List(c *gin.Context) {
	userID := c.GetString("userID")

	filter := Filter{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	sortSpec := SortSpec{
		By:    c.DefaultQuery("sortBy", "createdAt"),
		Order: c.DefaultQuery("sortOrder", "desc"),
	}
	page := pagination.FromRequest(c.Query("page"), c.Query("limit"))

	result := Query(h.store.ListByOwner(userID), filter, sortSpec, page.Page, page.Limit)

	response.Paginated(c, result.Items, result.Pagination)
}

// Stats godoc
// @Summary Get task statistics
// @Description Aggregate counts and completion rate over all of the user's tasks
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /tasks/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	userID := c.GetString("userID")

	stats := ComputeStats(h.store.ListByOwner(userID), time.Now())

	response.Success(c, stats)
}

// Get godoc
// @Summary Get a task by ID
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID := c.GetString("userID")

	task, ok := h.lookupOwned(c, userID)
	if !ok {
		return
	}

	response.Success(c, task)
}

// Create godoc
// @Summary Create a new task
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTaskRequest true "Task creation data"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /tasks [post]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateCreateTaskRequest(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	task := Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     req.DueDate,
	}
	if task.Status == "" {
		task.Status = StatusTodo
	}
	if task.Priority == "" {
		task.Priority = PriorityMedium
	}

	task = h.store.Create(task)

	response.Created(c, task)
}

// Update godoc
// @Summary Update a task
// @Description Update an owned task; moving into completed stamps completedAt, moving out clears it
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Param request body UpdateTaskRequest true "Task update data"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetString("userID")

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdateTaskRequest(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	task, ok := h.lookupOwned(c, userID)
	if !ok {
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.ApplyStatus(*req.Status, time.Now())
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}

	task = h.store.Save(task)

	response.Success(c, task)
}

// Delete godoc
// @Summary Delete a task
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Task ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetString("userID")

	task, ok := h.lookupOwned(c, userID)
	if !ok {
		return
	}

	h.store.Delete(task.ID)

	response.Success(c, map[string]string{"message": "Task deleted successfully"})
}

// lookupOwned parses the id param and fetches the task, writing a 404 when
// it is missing or belongs to someone else. Ownership failures are
// indistinguishable from missing tasks on purpose.
func (h *Handler) lookupOwned(c *gin.Context, userID string) (Task, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "Task not found")
		return Task{}, false
	}

	task, ok := h.store.Get(id)
	if !ok || task.UserID != userID {
		response.NotFound(c, "Task not found")
		return Task{}, false
	}

	return task, true
}
