// Command quickrename is a desktop tool that batch-renames the files of a
// folder: prefix, complete rename, search and replace, renumbering and
// extension changes, with a live preview and optional backups.
package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"QuickRename/internal/config"
	"QuickRename/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Default()
	if err := config.Parse(&cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "quickrename: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "quickrename: %v\n", err)
		return 2
	}

	log, err := logging.New(os.Stderr, cfg.LogFile, cfg.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "quickrename: %v\n", err)
		return 1
	}
	defer log.Close()

	var preset *config.Preset
	if cfg.Preset != "" {
		p, err := config.LoadPreset(cfg.Preset)
		if err != nil {
			log.Error().Err(err).Msg("cannot load preset")
			return 1
		}
		preset = &p
	}

	a := app.NewWithID(config.AppID)
	u := newUI(a, cfg, log.Logger)

	if preset != nil {
		u.applyPreset(*preset)
	}
	if cfg.AutoRefresh {
		u.autoRefresh.SetChecked(true)
	}
	if cfg.Dir != "" {
		u.openFolder(cfg.Dir)
	}

	log.Info().Str("version", config.Version).Msg("quick rename started")
	u.window.ShowAndRun()
	return 0
}
