// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"strings"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
	api "github.com/lomakinroman97/release-orchestrator-server/internal/oapi"
)

// FromOAPIReleaseRequest builds an entities.ReleaseRequest from transport DTO.
func FromOAPIReleaseRequest(src api.ReleaseRequest) entities.ReleaseRequest {
	req := entities.ReleaseRequest{
		Repository: strings.TrimSpace(src.Repository),
		Branch:     strings.TrimSpace(src.Branch),
	}
	if src.ForceVersion != nil {
		v := strings.TrimSpace(*src.ForceVersion)
		req.ForceVersion = &v
	}
	return req
}

// ToOAPIReleaseResponse maps a pipeline result to transport model.
func ToOAPIReleaseResponse(res entities.PipelineResult) api.ReleaseResponse {
	return api.ReleaseResponse{
		Success:    res.Success,
		Message:    res.Message,
		Version:    copyString(res.Version),
		PipelineId: copyString(res.PipelineID),
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
