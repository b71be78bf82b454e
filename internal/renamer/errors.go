package renamer

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"QuickRename/internal/naming"
)

var (
	ErrInvalidDirectory = errors.New("please select a directory to work from")
	ErrNothingSelected  = errors.New("please select files to rename")
	ErrRenumberRequired = errors.New("please turn on renumber when completely renaming more than one file")
	ErrInvalidStart     = errors.New("renumber start must be a whole number of 0 or more")
)

// DuplicateError reports destinations that more than one selected file
// would be renamed to.
type DuplicateError struct {
	Groups naming.Duplicates
}

func (e *DuplicateError) Error() string {
	var b strings.Builder
	b.WriteString("several files would get the same name:")
	for _, g := range e.Groups {
		fmt.Fprintf(&b, "\n - %s ← %s", g.Destination, strings.Join(g.Sources, ", "))
	}
	return b.String()
}
