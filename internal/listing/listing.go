// Package listing enumerates the files of a folder and narrows them with
// the extension and text filters of the file list.
package listing

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"QuickRename/internal/naming"
)

// Hint texts of the filter fields. A filter still holding its hint is off.
const (
	ExtensionHint = "...file type"
	SearchHint    = "...search str"
)

// List returns the sorted names of the regular files in dir. Directories
// are skipped.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading folder %s", dir)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !e.Type().IsRegular() {
			// Symlinks count as files when they point at one.
			info, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Filter narrows a listing. Empty or hint values disable a filter.
type Filter struct {
	LimitExtension bool
	Extension      string

	LimitText bool
	Text      string
}

// Matcher is a compiled Filter.
type Matcher struct {
	ext    string
	search func(string) bool
}

// Compile resolves f. A search text that is not a valid regular expression
// is matched literally.
func (f Filter) Compile() Matcher {
	var m Matcher
	if f.LimitExtension {
		ext := strings.TrimPrefix(strings.TrimSpace(f.Extension), ".")
		if ext != "" && f.Extension != ExtensionHint {
			m.ext = "." + ext
		}
	}
	if f.LimitText && f.Text != "" && f.Text != SearchHint {
		if re, err := regexp.Compile(f.Text); err == nil {
			m.search = re.MatchString
		} else {
			text := f.Text
			m.search = func(name string) bool { return strings.Contains(name, text) }
		}
	}
	return m
}

// Match reports whether name passes the filter.
func (m Matcher) Match(name string) bool {
	if m.ext != "" {
		if _, ext := naming.SplitExt(name); ext != m.ext {
			return false
		}
	}
	if m.search != nil && !m.search(name) {
		return false
	}
	return true
}

// Apply returns the names passing f, keeping their order.
func (f Filter) Apply(names []string) []string {
	m := f.Compile()
	out := make([]string, 0, len(names))
	for _, name := range names {
		if m.Match(name) {
			out = append(out, name)
		}
	}
	return out
}
