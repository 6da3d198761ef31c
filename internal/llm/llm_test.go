package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompletion(t *testing.T) {
	text, ok := Text("hello").Text()
	require.True(t, ok)
	require.Equal(t, "hello", text)
	require.Empty(t, Text("hello").Reason())

	c := Unusable(ReasonStatus, "HTTP 500")
	_, ok = c.Text()
	require.False(t, ok)
	require.Equal(t, ReasonStatus, c.Reason())
	require.Equal(t, "status: HTTP 500", c.String())
}
