package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
	"github.com/lomakinroman97/release-orchestrator-server/internal/mapper"
	api "github.com/lomakinroman97/release-orchestrator-server/internal/oapi"
	"github.com/gofiber/fiber/v2"
)

var errInvalidBody = fmt.Errorf("%w: invalid body", entities.ErrInvalidArgument)

// parseReleaseRequest decodes and validates the body shared by both trigger routes.
func parseReleaseRequest(c *fiber.Ctx) (entities.ReleaseRequest, error) {
	var body api.PostApiReleaseTriggerJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return entities.ReleaseRequest{}, errInvalidBody
	}

	req := mapper.FromOAPIReleaseRequest(body)
	if req.Repository == "" {
		return entities.ReleaseRequest{}, fmt.Errorf("%w: repository is required", entities.ErrInvalidArgument)
	}
	if _, err := entities.ParseRepoRef(req.Repository); err != nil {
		return entities.ReleaseRequest{}, err
	}
	return req, nil
}

func writeError(c *fiber.Ctx, prefix string, err error) error {
	status := http.StatusInternalServerError
	if errors.Is(err, entities.ErrInvalidArgument) {
		status = http.StatusBadRequest
	}
	return c.Status(status).JSON(errorResponse(prefix + ": " + err.Error()))
}

func errorResponse(msg string) api.ReleaseResponse {
	return api.ReleaseResponse{Success: false, Message: msg}
}
