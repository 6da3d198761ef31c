package domain

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
)

// Schedule starts a pipeline run in the background and returns at once.
// The run is detached from the caller; its outcome is only logged.
func (u *Usecase) Schedule(_ context.Context, req entities.ReleaseRequest) *entities.Task {
	task := entities.NewTask(u.newID())
	runCtx := context.WithoutCancel(u.ctx)

	u.runs.Add(1)
	go func() {
		defer u.runs.Done()

		res := u.run(runCtx, task.ID, req)
		if !res.Success {
			u.log.Errorw("scheduled release pipeline failed",
				"pipeline_id", task.ID, "repository", req.Repository, "message", res.Message)
		}
		task.Finish(res)
	}()

	u.log.Infow("release pipeline scheduled", "pipeline_id", task.ID, "repository", req.Repository)
	return task
}

// Wait blocks until every scheduled run has finished or ctx is done.
func (u *Usecase) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		u.runs.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// newPipelineID returns a time-ordered correlation label.
func newPipelineID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return strconv.FormatInt(time.Now().UnixMilli(), 10)
	}
	return id.String()
}
