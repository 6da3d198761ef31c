// Package api describes the HTTP contract of the release orchestrator.
package api

import "github.com/gofiber/fiber/v2"

// ReleaseRequest is the body of both trigger endpoints.
type ReleaseRequest struct {
	Repository   string  `json:"repository"`
	Branch       string  `json:"branch,omitempty"`
	ForceVersion *string `json:"forceVersion,omitempty"`
}

// ReleaseResponse is the envelope returned by both trigger endpoints.
type ReleaseResponse struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	Version    *string `json:"version"`
	PipelineId *string `json:"pipelineId"`
}

// PostApiReleaseTriggerJSONRequestBody defines body for PostApiReleaseTrigger.
type PostApiReleaseTriggerJSONRequestBody = ReleaseRequest

// PostApiReleaseTriggerSyncJSONRequestBody defines body for PostApiReleaseTriggerSync.
type PostApiReleaseTriggerSyncJSONRequestBody = ReleaseRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Schedule a release pipeline run.
	// (POST /api/release/trigger)
	PostApiReleaseTrigger(c *fiber.Ctx) error
	// Run a release pipeline and wait for its result.
	// (POST /api/release/trigger/sync)
	PostApiReleaseTriggerSync(c *fiber.Ctx) error
}

// RegisterHandlers binds the ServerInterface to router.
func RegisterHandlers(router fiber.Router, si ServerInterface) {
	router.Post("/api/release/trigger", si.PostApiReleaseTrigger)
	router.Post("/api/release/trigger/sync", si.PostApiReleaseTriggerSync)
}
