// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/lomakinroman97/release-orchestrator-server/internal/usecase"
	"go.uber.org/zap"
)

// Handler implements oapi.ServerInterface using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.ReleaseUsecaseInterface
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.ReleaseUsecaseInterface) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}
