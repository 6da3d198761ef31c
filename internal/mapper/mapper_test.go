package mapper

import (
	"testing"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
	api "github.com/lomakinroman97/release-orchestrator-server/internal/oapi"
	"github.com/stretchr/testify/require"
)

func TestFromOAPIReleaseRequest(t *testing.T) {
	v := " 1.2.3 "
	got := FromOAPIReleaseRequest(api.ReleaseRequest{Repository: " octo/app ", Branch: "dev", ForceVersion: &v})

	require.Equal(t, "octo/app", got.Repository)
	require.Equal(t, "dev", got.Branch)
	require.Equal(t, "1.2.3", *got.ForceVersion)

	got = FromOAPIReleaseRequest(api.ReleaseRequest{Repository: "octo/app"})
	require.Nil(t, got.ForceVersion)
	require.Empty(t, got.Branch)
}

func TestToOAPIReleaseResponse(t *testing.T) {
	res := ToOAPIReleaseResponse(entities.Succeeded("ok", "2.0.2", "id-1"))
	require.True(t, res.Success)
	require.Equal(t, "2.0.2", *res.Version)
	require.Equal(t, "id-1", *res.PipelineId)

	res = ToOAPIReleaseResponse(entities.Failed("nope", ""))
	require.False(t, res.Success)
	require.Nil(t, res.Version)
	require.Nil(t, res.PipelineId)
}
