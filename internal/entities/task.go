// Package entities contains core business entities.
package entities

import "sync"

// Task is a scheduled pipeline run whose outcome arrives later.
type Task struct {
	ID string

	once   sync.Once
	done   chan struct{}
	result PipelineResult
}

// NewTask creates an unfinished task.
func NewTask(id string) *Task {
	return &Task{ID: id, done: make(chan struct{})}
}

// Accepted is the envelope reported when the task is scheduled. It says
// nothing about whether the run will succeed.
func (t *Task) Accepted() PipelineResult {
	id := t.ID
	return PipelineResult{
		Success:    true,
		Message:    "Release pipeline started",
		PipelineID: &id,
	}
}

// Finish records the terminal result. Only the first call has an effect.
func (t *Task) Finish(res PipelineResult) {
	t.once.Do(func() {
		t.result = res
		close(t.done)
	})
}

// Done is closed once the run has finished.
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Result returns the terminal result, or false while the run is in flight.
func (t *Task) Result() (PipelineResult, bool) {
	select {
	case <-t.done:
		return t.result, true
	default:
		return PipelineResult{}, false
	}
}
