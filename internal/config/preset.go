package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"QuickRename/internal/listing"
	"QuickRename/internal/naming"
)

// Preset is a saved set of rename and filter options.
type Preset struct {
	Rename RenamePreset `toml:"rename"`
	Filter FilterPreset `toml:"filter"`
	Backup *bool        `toml:"backup"`
}

// RenamePreset mirrors naming.Settings.
type RenamePreset struct {
	AddPrefix       bool   `toml:"add_prefix"`
	Prefix          string `toml:"prefix,omitempty"`
	FullRename      bool   `toml:"full_rename"`
	NewName         string `toml:"new_name,omitempty"`
	SearchReplace   bool   `toml:"search_replace"`
	Find            string `toml:"find,omitempty"`
	Replace         string `toml:"replace,omitempty"`
	Renumber        bool   `toml:"renumber"`
	Start           int    `toml:"start"`
	Padding         int    `toml:"padding"`
	Dot             bool   `toml:"dot"`
	RemoveExtension bool   `toml:"remove_extension"`
	ChangeExtension bool   `toml:"change_extension"`
	NewExtension    string `toml:"new_extension,omitempty"`
}

// FilterPreset mirrors listing.Filter.
type FilterPreset struct {
	LimitExtension bool   `toml:"limit_extension"`
	Extension      string `toml:"extension,omitempty"`
	LimitText      bool   `toml:"limit_text"`
	Text           string `toml:"text,omitempty"`
}

// DecodePreset reads a preset from r; name labels errors. Unknown keys are
// an error so typos do not pass silently.
func DecodePreset(r io.Reader, name string) (Preset, error) {
	var p Preset
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Preset{}, errors.Wrapf(err, "reading preset %s", name)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Preset{}, errors.Errorf("preset %s: unknown key %q", name, undec[0].String())
	}
	if p.Rename.Padding < 0 || p.Rename.Padding > naming.MaxPadding {
		return Preset{}, errors.Errorf("preset %s: padding must be between 0 and %d", name, naming.MaxPadding)
	}
	if p.Rename.Start < 0 {
		return Preset{}, errors.Errorf("preset %s: start must not be negative", name)
	}
	return p, nil
}

// EncodePreset writes p to w as TOML.
func EncodePreset(w io.Writer, p Preset) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(p), "saving preset")
}

// LoadPreset reads the preset file at path.
func LoadPreset(path string) (Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Preset{}, errors.Wrapf(err, "reading preset %s", path)
	}
	defer f.Close()
	return DecodePreset(f, path)
}

// SavePreset writes p to path, replacing any existing file.
func SavePreset(path string, p Preset) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "saving preset")
	}
	if err := EncodePreset(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Settings converts the rename part of p.
func (p Preset) Settings() naming.Settings {
	r := p.Rename
	return naming.Settings{
		AddPrefix:       r.AddPrefix,
		Prefix:          r.Prefix,
		FullRename:      r.FullRename,
		NewName:         r.NewName,
		SearchReplace:   r.SearchReplace,
		Find:            r.Find,
		Replace:         r.Replace,
		Renumber:        r.Renumber,
		Start:           r.Start,
		Padding:         r.Padding,
		Dot:             r.Dot,
		RemoveExtension: r.RemoveExtension,
		ChangeExtension: r.ChangeExtension,
		NewExtension:    r.NewExtension,
	}
}

// FilterSettings converts the filter part of p.
func (p Preset) FilterSettings() listing.Filter {
	return listing.Filter(p.Filter)
}

// NewPreset captures the given options. A start that is not a valid number
// is saved as naming.DefaultStart.
func NewPreset(s naming.Settings, f listing.Filter, backup bool) Preset {
	if s.Start < 0 {
		s.Start = naming.DefaultStart
	}
	return Preset{
		Rename: RenamePreset{
			AddPrefix:       s.AddPrefix,
			Prefix:          s.Prefix,
			FullRename:      s.FullRename,
			NewName:         s.NewName,
			SearchReplace:   s.SearchReplace,
			Find:            s.Find,
			Replace:         s.Replace,
			Renumber:        s.Renumber,
			Start:           s.Start,
			Padding:         s.Padding,
			Dot:             s.Dot,
			RemoveExtension: s.RemoveExtension,
			ChangeExtension: s.ChangeExtension,
			NewExtension:    s.NewExtension,
		},
		Filter: FilterPreset(f),
		Backup: &backup,
	}
}
