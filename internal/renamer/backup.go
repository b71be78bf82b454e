package renamer

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// DefaultBackupDir is the folder, inside the working folder, that receives
// backups.
const DefaultBackupDir = "quick_rename_backup"

// BackupFolder returns the timestamped backup folder for a batch started at
// now.
func BackupFolder(dir, name string, now time.Time) string {
	if name == "" {
		name = DefaultBackupDir
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(dir, name)
	}
	return filepath.Join(name, now.Format("2006_01_02_150405.000"))
}

// Backup copies src into folder, creating folder when absent. The copy keeps
// the file mode and modification time.
func Backup(src, folder string) (string, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", errors.Wrap(err, "creating backup folder")
	}
	dst := filepath.Join(folder, filepath.Base(src))
	if err := copyFile(src, dst); err != nil {
		return "", errors.Wrapf(err, "backing up %s", filepath.Base(src))
	}
	return dst, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
