package naming

import "strings"

// Hint texts shown in empty option fields. A field still holding its hint
// counts as unset.
const (
	PrefixHint       = "...prefix"
	NewNameHint      = "...new name"
	FindHint         = "...search for"
	ReplaceHint      = "...replace with"
	NewExtensionHint = "...new ext"
)

// Settings are the raw option values as entered in the option panel: one
// checkbox and its text per feature.
type Settings struct {
	AddPrefix bool
	Prefix    string

	FullRename bool
	NewName    string

	SearchReplace bool
	Find          string
	Replace       string

	Renumber bool
	Start    int
	Padding  int
	Dot      bool

	RemoveExtension bool
	ChangeExtension bool
	NewExtension    string
}

// Config resolves s into a Config. A feature whose checkbox is set but whose
// text is empty or still the hint stays off. An empty replacement is valid
// and deletes the matched text.
func (s Settings) Config() Config {
	cfg := Config{RemoveExtension: s.RemoveExtension}
	if s.AddPrefix && isSet(s.Prefix, PrefixHint) {
		cfg.Prefix = Some(s.Prefix)
	}
	if s.FullRename && isSet(s.NewName, NewNameHint) {
		cfg.NewName = Some(s.NewName)
	}
	if s.SearchReplace && isSet(s.Find, FindHint) && s.Replace != ReplaceHint {
		cfg.Replace = Some(Replacement{Find: s.Find, With: s.Replace})
	}
	if s.Renumber {
		cfg.Renumber = Some(Numbering{Start: s.Start, Padding: s.Padding, Dot: s.Dot})
	}
	if s.ChangeExtension && isSet(s.NewExtension, NewExtensionHint) && strings.TrimPrefix(s.NewExtension, ".") != "" {
		cfg.NewExtension = Some(s.NewExtension)
	}
	return cfg
}

func isSet(text, hint string) bool {
	return text != "" && text != hint
}
