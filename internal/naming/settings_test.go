package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsHintMeansUnset(t *testing.T) {
	cases := []struct {
		name     string
		settings Settings
		want     string
	}{
		{
			name:     "prefix hint",
			settings: Settings{AddPrefix: true, Prefix: PrefixHint},
			want:     "a.txt",
		},
		{
			name:     "prefix empty",
			settings: Settings{AddPrefix: true},
			want:     "a.txt",
		},
		{
			name:     "prefix unchecked",
			settings: Settings{Prefix: "IMG_"},
			want:     "a.txt",
		},
		{
			name:     "prefix set",
			settings: Settings{AddPrefix: true, Prefix: "IMG_"},
			want:     "IMG_a.txt",
		},
		{
			name:     "new name hint",
			settings: Settings{FullRename: true, NewName: NewNameHint},
			want:     "a.txt",
		},
		{
			name:     "replace hint disables search",
			settings: Settings{SearchReplace: true, Find: "a", Replace: ReplaceHint},
			want:     "a.txt",
		},
		{
			name:     "find hint disables search",
			settings: Settings{SearchReplace: true, Find: FindHint, Replace: "b"},
			want:     "a.txt",
		},
		{
			name:     "empty replacement deletes match",
			settings: Settings{SearchReplace: true, Find: "a", Replace: ""},
			want:     ".txt",
		},
		{
			name:     "search replace set",
			settings: Settings{SearchReplace: true, Find: "a", Replace: "b"},
			want:     "b.txt",
		},
		{
			name:     "extension hint",
			settings: Settings{ChangeExtension: true, NewExtension: NewExtensionHint},
			want:     "a.txt",
		},
		{
			name:     "lone dot extension is unset",
			settings: Settings{ChangeExtension: true, NewExtension: "."},
			want:     "a.txt",
		},
		{
			name:     "remove and change",
			settings: Settings{RemoveExtension: true, ChangeExtension: true, NewExtension: "md"},
			want:     "a",
		},
		{
			name:     "renumber",
			settings: Settings{Renumber: true, Start: 5},
			want:     "a5.txt",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := tc.settings.Config()
			assert.Equal(t, tc.want, Compose("a.txt", cfg.Start(), cfg))
		})
	}
}

func TestSettingsAllOffIsIdentity(t *testing.T) {
	cfg := Settings{
		Prefix:       "p",
		NewName:      "n",
		Find:         "a",
		Replace:      "b",
		Start:        3,
		Padding:      4,
		Dot:          true,
		NewExtension: "md",
	}.Config()
	assert.Equal(t, Config{}, cfg)
	assert.Equal(t, "a.txt", Compose("a.txt", 3, cfg))
}

func TestSettingsEmptyReplacement(t *testing.T) {
	cfg := Settings{SearchReplace: true, Find: "DSC_", Replace: ""}.Config()
	assert.Equal(t, "001.JPG", Compose("DSC_001.JPG", 0, cfg))

	cfg = Settings{SearchReplace: true, Find: "", Replace: ""}.Config()
	assert.False(t, cfg.Replace.IsSome())
}
