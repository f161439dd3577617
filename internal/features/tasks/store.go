package tasks

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Store is an in-memory task store. It owns the id sequence and guards the
// map with a mutex so handlers never share mutable task state; all methods
// copy tasks in and out.
type Store struct {
	mu    sync.RWMutex
	tasks map[int64]Task
	seq   atomic.Int64
}

func NewStore() *Store {
	return &Store{tasks: make(map[int64]Task)}
}

// Create assigns an id and timestamps and stores the task
func (s *Store) Create(t Task) Task {
	t.ID = s.seq.Add(1)
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt

	s.mu.Lock()
	s.tasks[t.ID] = t
	s.mu.Unlock()

	return t
}

// Get returns a copy of the task with the given id
func (s *Store) Get(id int64) (Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	return t, ok
}

// Save overwrites an existing task and bumps its updatedAt
func (s *Store) Save(t Task) Task {
	t.UpdatedAt = time.Now()

	s.mu.Lock()
	s.tasks[t.ID] = t
	s.mu.Unlock()

	return t
}

// Delete removes the task with the given id
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// ListByOwner returns copies of one user's tasks in insertion order.
// Ids are monotonic, so sorting by id reproduces creation order.
func (s *Store) ListByOwner(userID string) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Task{}
	for _, t := range s.tasks {
		if t.UserID == userID {
			result = append(result, t)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// ApplyStatus sets the task status, maintaining the completedAt invariant:
// entering completed stamps completedAt once, leaving it clears the stamp.
// Every update path that touches status goes through here.
func (t *Task) ApplyStatus(status string, now time.Time) {
	t.Status = status
	if status == StatusCompleted {
		if t.CompletedAt == nil {
			t.CompletedAt = &now
		}
	} else {
		t.CompletedAt = nil
	}
}
