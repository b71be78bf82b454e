// Package renamer validates a rename batch, plans it against the folder and
// executes it with optional backups.
//
// A batch is never aborted halfway: an item that cannot be renamed is
// recorded as failed and the remaining items still run. The returned
// Report lists what happened to every item.
package renamer

import (
	"os"
	"path/filepath"
	"strings"

	"QuickRename/internal/naming"
)

// Status is the state of a plan item.
type Status string

const (
	StatusReady     Status = "ready"
	StatusUnchanged Status = "unchanged"
	StatusInvalid   Status = "invalid"
	StatusConflict  Status = "conflict"
	StatusRenamed   Status = "renamed"
	StatusFailed    Status = "failed"
	StatusDryRun    Status = "dry-run"
)

// Item is one source file of a batch.
type Item struct {
	Source      string
	Destination string
	OldPath     string
	NewPath     string
	Status      Status
	Reason      string
}

// Plan is a validated batch in rename order.
type Plan struct {
	Dir   string
	Items []Item
}

// BuildPlan validates the batch, composes every destination and marks
// items that will be skipped. names must be in display order; they are
// numbered from the configured start.
func BuildPlan(dir string, names []string, cfg naming.Config) (Plan, error) {
	if err := Validate(dir, names, cfg, true); err != nil {
		return Plan{}, err
	}

	results := naming.Preview(naming.Sequence(names, cfg.Start()), cfg)
	if err := CheckDuplicates(results); err != nil {
		return Plan{}, err
	}

	sources := make(map[string]bool, len(names))
	for _, n := range names {
		sources[n] = true
	}

	plan := Plan{Dir: dir, Items: make([]Item, 0, len(results))}
	for _, r := range results {
		it := Item{
			Source:      r.Source,
			Destination: r.Destination,
			OldPath:     filepath.Join(dir, r.Source),
			NewPath:     filepath.Join(dir, r.Destination),
			Status:      StatusReady,
		}

		switch {
		case r.Destination == r.Source:
			it.Status = StatusUnchanged
		case invalidNameReason(r.Destination) != "":
			it.Status = StatusInvalid
			it.Reason = invalidNameReason(r.Destination)
		case !sources[r.Destination] && exists(it.NewPath):
			// A destination that is itself a source may be freed earlier in
			// the batch; Execute checks again right before renaming.
			it.Status = StatusConflict
			it.Reason = "target exists on disk"
		}
		plan.Items = append(plan.Items, it)
	}
	return plan, nil
}

// Count returns the number of items with status s.
func (p Plan) Count(s Status) int {
	n := 0
	for _, it := range p.Items {
		if it.Status == s {
			n++
		}
	}
	return n
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true, "COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true, "LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

func invalidNameReason(name string) string {
	trim := strings.TrimSpace(name)
	if trim == "" {
		return "empty name"
	}
	if trim == "." || trim == ".." {
		return "reserved filename"
	}
	if strings.ContainsAny(trim, "<>:\"/\\|?*\x00") {
		return "invalid characters"
	}
	base, _ := naming.SplitExt(trim)
	if reservedNames[strings.ToUpper(base)] {
		return "reserved filename"
	}
	return ""
}
