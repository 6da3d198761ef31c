package handlers_fiber

import (
	"net/http"

	"github.com/lomakinroman97/release-orchestrator-server/internal/mapper"
	"github.com/gofiber/fiber/v2"
)

const (
	startFailedPrefix   = "Failed to start release pipeline"
	processFailedPrefix = "Failed to process release"
)

// PostApiReleaseTrigger schedules a pipeline run and answers before it finishes.
func (h *Handler) PostApiReleaseTrigger(c *fiber.Ctx) error {
	req, err := parseReleaseRequest(c)
	if err != nil {
		h.log.Infow("rejected release trigger", "error", err)
		return writeError(c, startFailedPrefix, err)
	}

	task := h.uc.Schedule(c.UserContext(), req)
	return c.Status(http.StatusAccepted).JSON(mapper.ToOAPIReleaseResponse(task.Accepted()))
}

// PostApiReleaseTriggerSync runs the pipeline and reports its real outcome.
func (h *Handler) PostApiReleaseTriggerSync(c *fiber.Ctx) error {
	req, err := parseReleaseRequest(c)
	if err != nil {
		h.log.Infow("rejected sync release", "error", err)
		return writeError(c, processFailedPrefix, err)
	}

	res := h.uc.RunSync(c.UserContext(), req)
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIReleaseResponse(res))
}
