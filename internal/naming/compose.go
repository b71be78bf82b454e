// Package naming builds destination file names from a source name, its
// position in a batch and a rename configuration, and detects batches whose
// destinations collide.
package naming

import (
	"fmt"
	"strings"
)

const (
	MinPadding = 1
	MaxPadding = 9

	// Starting values of the numbering fields.
	DefaultStart   = 1
	DefaultPadding = 4
)

// Replacement is a literal find/replace pair. Every occurrence of Find is
// replaced.
type Replacement struct {
	Find string
	With string
}

// Numbering appends a sequence number to the composed name.
type Numbering struct {
	Start int
	// Padding is the zero-fill width. 0 disables padding; any other value is
	// clamped to [MinPadding, MaxPadding].
	Padding int
	Dot     bool
}

// Config is the resolved rename configuration for one preview or rename
// pass. Build it with Settings.Config or directly with Some/None.
type Config struct {
	Prefix          Option[string]
	NewName         Option[string]
	Replace         Option[Replacement]
	Renumber        Option[Numbering]
	RemoveExtension bool
	NewExtension    Option[string]
}

// Candidate is a source file name and the number it is renamed with.
type Candidate struct {
	Source   string
	Position int
}

// Result pairs a source name with its composed destination.
type Result struct {
	Source      string
	Destination string
}

// Compose returns the destination name for source at position.
//
// The name is split at its last dot, the extension is kept, removed or
// changed, the base is fully renamed or search/replaced (full rename wins),
// the prefix is prepended and finally the sequence number is appended
// before the extension.
func Compose(source string, position int, cfg Config) string {
	base, ext := SplitExt(source)

	switch {
	case cfg.RemoveExtension:
		ext = ""
	case cfg.NewExtension.IsSome():
		newExt, _ := cfg.NewExtension.Get()
		ext = "." + strings.TrimPrefix(newExt, ".")
	}

	name := base
	if newName, ok := cfg.NewName.Get(); ok {
		name = newName
	} else if r, ok := cfg.Replace.Get(); ok && r.Find != "" && strings.Contains(base, r.Find) {
		name = strings.ReplaceAll(base, r.Find, r.With)
	}

	if prefix, ok := cfg.Prefix.Get(); ok {
		name = prefix + name
	}

	n, ok := cfg.Renumber.Get()
	if !ok {
		return name + ext
	}
	sep := ""
	if n.Dot {
		sep = "."
	}
	return name + sep + FormatNumber(position, n.Padding) + ext
}

// FormatNumber renders num zero-filled to pad digits. pad 0 means no
// padding; other values are clamped to [MinPadding, MaxPadding].
func FormatNumber(num, pad int) string {
	if pad == 0 {
		return fmt.Sprintf("%d", num)
	}
	return fmt.Sprintf("%0*d", clampPadding(pad), num)
}

func clampPadding(pad int) int {
	if pad < MinPadding {
		return MinPadding
	}
	if pad > MaxPadding {
		return MaxPadding
	}
	return pad
}

// SplitExt splits name into base and extension at the last dot. The
// extension keeps its leading dot. Leading dots belong to the base, so
// ".bashrc" has no extension.
func SplitExt(name string) (base, ext string) {
	lead := len(name) - len(strings.TrimLeft(name, "."))
	i := strings.LastIndex(name[lead:], ".")
	if i < 0 {
		return name, ""
	}
	i += lead
	return name[:i], name[i:]
}

// Sequence numbers names in order, starting at start.
func Sequence(names []string, start int) []Candidate {
	out := make([]Candidate, len(names))
	for i, name := range names {
		out[i] = Candidate{Source: name, Position: start + i}
	}
	return out
}

// Preview composes every candidate, preserving candidate order.
func Preview(candidates []Candidate, cfg Config) []Result {
	out := make([]Result, len(candidates))
	for i, c := range candidates {
		out[i] = Result{Source: c.Source, Destination: Compose(c.Source, c.Position, cfg)}
	}
	return out
}

// Start returns the first sequence number of cfg, or 0 without renumbering.
func (c Config) Start() int {
	if n, ok := c.Renumber.Get(); ok {
		return n.Start
	}
	return 0
}
