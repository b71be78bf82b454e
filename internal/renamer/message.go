package renamer

import (
	"fmt"
	"strings"
)

const listLimit = 20

// ConfirmMessage describes p for the confirmation dialog.
func ConfirmMessage(p Plan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are about to process %d file(s).\n", len(p.Items))
	fmt.Fprintf(&b, "Will rename: %d\n", p.Count(StatusReady))
	fmt.Fprintf(&b, "Unchanged (skipped): %d\n\n", p.Count(StatusUnchanged))

	writeItems(&b, "Invalid names (skipped):", p.Items, StatusInvalid)
	writeItems(&b, "Target already exists on disk (skipped):", p.Items, StatusConflict)

	b.WriteString("Are you sure you want to rename the selected files?")
	return b.String()
}

// ResultMessage summarises rep for the result dialog.
func ResultMessage(rep Report) string {
	var b strings.Builder
	skipped := rep.Count(StatusUnchanged) + rep.Count(StatusInvalid) + rep.Count(StatusConflict)
	if rep.DryRun {
		fmt.Fprintf(&b, "Dry run complete.\nWould rename: %d\nSkipped: %d\n", rep.Count(StatusDryRun), skipped)
	} else {
		fmt.Fprintf(&b, "Rename complete.\nRenamed: %d\nSkipped: %d\nFailed: %d\n",
			rep.Count(StatusRenamed), skipped, rep.Count(StatusFailed))
	}
	if rep.BackupPath != "" {
		fmt.Fprintf(&b, "Backup: %s\n", rep.BackupPath)
	}
	b.WriteString("\n")

	writeItems(&b, "Failed:", rep.Items, StatusFailed)
	writeItems(&b, "Invalid names (skipped):", rep.Items, StatusInvalid)
	writeItems(&b, "Target already exists on disk (skipped):", rep.Items, StatusConflict)
	return strings.TrimRight(b.String(), "\n")
}

func writeItems(b *strings.Builder, title string, items []Item, s Status) {
	var lines []string
	for _, it := range items {
		if it.Status != s {
			continue
		}
		line := it.Source + " → " + it.Destination
		if it.Reason != "" {
			line += " (" + it.Reason + ")"
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return
	}
	b.WriteString(title + "\n")
	for _, l := range firstN(lines, listLimit) {
		b.WriteString(" - " + l + "\n")
	}
	if len(lines) > listLimit {
		fmt.Fprintf(b, " ... and %d more\n", len(lines)-listLimit)
	}
	b.WriteString("\n")
}

func firstN[T any](in []T, n int) []T {
	if len(in) <= n {
		return in
	}
	return in[:n]
}
