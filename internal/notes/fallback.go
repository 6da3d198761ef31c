package notes

import (
	"fmt"
	"strings"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
)

const firstVersionText = "This is the first version of the application."

// Fallback renders deterministic release notes without any backend.
func Fallback(commits []entities.Commit, version string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## What's new in version %s\n\n", version)
	b.WriteString("### Description\n")
	if len(commits) == 0 {
		b.WriteString(firstVersionText)
		b.WriteString("\n")
	} else {
		writeCommitList(&b, commits)
	}
	b.WriteString("\n*Release notes were generated automatically*\n")
	return b.String()
}
