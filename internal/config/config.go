// Package config holds runtime configuration: defaults, command-line
// parsing, validation and rename-option presets.
package config

import (
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"

	"QuickRename/internal/renamer"
)

// AppID identifies the application to Fyne (preferences storage).
const AppID = "com.quickrename.app"

// Config holds the settings given on the command line.
type Config struct {
	Dir         string `arg:"positional" help:"folder to open on start"`
	Preset      string `arg:"--preset" help:"TOML preset with rename options to load"`
	BackupDir   string `arg:"--backup-dir" help:"backup folder name inside the working folder"`
	NoBackup    bool   `arg:"--no-backup" help:"start with backups turned off"`
	AutoRefresh bool   `arg:"--auto-refresh" help:"refresh the file list when the folder changes"`
	LogFile     string `arg:"--log-file" help:"also write the log to this file"`
	Verbose     bool   `arg:"-v,--verbose" help:"debug logging"`
}

// Version is reported by --version.
var Version = "1.0.0"

// Version implements go-arg's Versioned interface.
func (Config) Version() string {
	return "quickrename " + Version
}

// Description implements go-arg's Described interface.
func (Config) Description() string {
	return "Batch-rename the files of a folder with prefix, rename, search/replace,\nrenumbering and extension options, previewing the result first."
}

// Default returns a Config with every default applied.
func Default() Config {
	return Config{BackupDir: renamer.DefaultBackupDir}
}

// Parse fills cfg from args (without the program name), exiting on --help
// and --version like any go-arg program.
func Parse(cfg *Config, args []string) error {
	p, err := arg.NewParser(arg.Config{Program: "quickrename"}, cfg)
	if err != nil {
		return err
	}
	err = p.Parse(args)
	switch {
	case errors.Is(err, arg.ErrHelp):
		p.WriteHelp(stdout)
		exit(0)
	case errors.Is(err, arg.ErrVersion):
		_, _ = stdout.Write([]byte(cfg.Version() + "\n"))
		exit(0)
	case err != nil:
		return err
	}
	return nil
}

// Validate normalizes paths and checks field values.
func (c *Config) Validate() error {
	var err error
	for _, p := range []*string{&c.Dir, &c.Preset, &c.LogFile} {
		if *p, err = ExpandPath(*p); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.BackupDir) == "" {
		return errors.New("backup folder name must not be empty")
	}
	return nil
}

// ExpandPath expands a leading ~ and cleans p. Empty stays empty.
func ExpandPath(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	exp, err := homedir.Expand(filepath.Clean(p))
	if err != nil {
		return "", errors.Wrapf(err, "expanding %s", p)
	}
	return exp, nil
}
