package renamer

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Executor runs plans.
type Executor struct {
	// Backup copies each file before it is renamed.
	Backup bool
	// BackupDir is the backup folder name, relative to the plan folder
	// unless absolute. Empty means DefaultBackupDir.
	BackupDir string
	// DryRun reports what would happen without touching any file.
	DryRun bool

	Log zerolog.Logger
	Now func() time.Time
}

// Report is the outcome of a batch.
type Report struct {
	Items      []Item
	BackupPath string
	DryRun     bool
}

// Execute renames the ready items of p in order. A failed item is recorded
// and the batch goes on.
func (e *Executor) Execute(p Plan) Report {
	rep := Report{Items: make([]Item, 0, len(p.Items)), DryRun: e.DryRun}

	if e.Backup && !e.DryRun {
		now := time.Now
		if e.Now != nil {
			now = e.Now
		}
		rep.BackupPath = BackupFolder(p.Dir, e.BackupDir, now())
	}

	for _, it := range p.Items {
		if it.Status != StatusReady {
			rep.Items = append(rep.Items, it)
			continue
		}
		if e.DryRun {
			it.Status = StatusDryRun
			rep.Items = append(rep.Items, it)
			continue
		}

		if rep.BackupPath != "" {
			if _, err := Backup(it.OldPath, rep.BackupPath); err != nil {
				it.Status = StatusFailed
				it.Reason = err.Error()
				e.Log.Error().Err(err).Str("file", it.Source).Msg("backup failed, not renaming")
				rep.Items = append(rep.Items, it)
				continue
			}
		}

		if err := renameNoReplace(it.OldPath, it.NewPath); err != nil {
			it.Status = StatusFailed
			it.Reason = err.Error()
			e.Log.Error().Err(err).Str("from", it.Source).Str("to", it.Destination).Msg("rename failed")
		} else {
			it.Status = StatusRenamed
			e.Log.Info().Str("from", it.Source).Str("to", it.Destination).Msg("renamed")
		}
		rep.Items = append(rep.Items, it)
	}
	return rep
}

var errTargetExists = errors.New("target exists on disk")

// renameNoReplace renames oldPath to newPath unless newPath already names
// a different file. Renaming onto the same file (a case-only change on a
// case-insensitive filesystem) is allowed.
func renameNoReplace(oldPath, newPath string) error {
	if dst, err := os.Lstat(newPath); err == nil {
		src, serr := os.Lstat(oldPath)
		if serr != nil || !os.SameFile(src, dst) {
			return errTargetExists
		}
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.Rename(oldPath, newPath)
}

// Count returns the number of items with status s.
func (r Report) Count(s Status) int {
	return Plan{Items: r.Items}.Count(s)
}

// Failed returns the items that could not be renamed.
func (r Report) Failed() []Item {
	var out []Item
	for _, it := range r.Items {
		if it.Status == StatusFailed {
			out = append(out, it)
		}
	}
	return out
}
