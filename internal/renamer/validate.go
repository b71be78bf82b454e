package renamer

import (
	"os"

	"github.com/pkg/errors"

	"QuickRename/internal/naming"
)

// Validate checks the preconditions of a preview or rename pass over the
// checked names. Selection is only required for an actual rename.
func Validate(dir string, names []string, cfg naming.Config, requireSelection bool) error {
	if dir == "" {
		return ErrInvalidDirectory
	}
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(ErrInvalidDirectory, err.Error())
	}
	if !info.IsDir() {
		return errors.Wrapf(ErrInvalidDirectory, "%s is not a directory", dir)
	}

	if requireSelection && len(names) == 0 {
		return ErrNothingSelected
	}

	n, renumber := cfg.Renumber.Get()
	if cfg.NewName.IsSome() && len(names) > 1 && !renumber {
		return ErrRenumberRequired
	}
	if renumber && n.Start < 0 {
		return ErrInvalidStart
	}
	return nil
}

// CheckDuplicates returns a *DuplicateError when results collide.
func CheckDuplicates(results []naming.Result) error {
	if dups := naming.FindDuplicates(results); len(dups) > 0 {
		return &DuplicateError{Groups: dups}
	}
	return nil
}
