// Package entities contains core business entities.
package entities

// PipelineResult is the response envelope of a pipeline run.
type PipelineResult struct {
	Success    bool
	Message    string
	Version    *string
	PipelineID *string
}

// Succeeded builds a successful result.
func Succeeded(message, version, pipelineID string) PipelineResult {
	return PipelineResult{
		Success:    true,
		Message:    message,
		Version:    &version,
		PipelineID: &pipelineID,
	}
}

// Failed builds a failed result without a version.
func Failed(message, pipelineID string) PipelineResult {
	res := PipelineResult{Message: message}
	if pipelineID != "" {
		res.PipelineID = &pipelineID
	}
	return res
}
