package notes

import (
	"fmt"
	"strings"

	"github.com/lomakinroman97/release-orchestrator-server/internal/entities"
)

const noCommitsPlaceholder = "No new commits to analyze."

// BuildPrompt formats the commit list and output requirements for the backend.
func BuildPrompt(commits []entities.Commit, version string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write short, clear release notes for version %s of the application.\n\n", version)
	if len(commits) == 0 {
		b.WriteString(noCommitsPlaceholder)
		b.WriteString("\n")
	} else {
		b.WriteString("Commits:\n")
		writeCommitList(&b, commits)
	}

	b.WriteString("\nRequirements:\n")
	b.WriteString("1. Write for end users, not developers.\n")
	b.WriteString("2. If there are no commits, describe this as the first version of the application.\n")
	b.WriteString("3. Use Markdown.\n")
	b.WriteString("\nResponse format:\n")
	fmt.Fprintf(&b, "## What's new in version %s\n\n", version)
	b.WriteString("### Description\n")
	b.WriteString("A short description of the version\n\n")
	b.WriteString("### Technical details\n")
	b.WriteString("- details, if any\n")
	return b.String()
}

func writeCommitList(b *strings.Builder, commits []entities.Commit) {
	for _, c := range commits {
		fmt.Fprintf(b, "- %s (%s)\n", strings.TrimSpace(c.Message), valueOr(c.Author, "unknown"))
	}
}

func valueOr(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}
