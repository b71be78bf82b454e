package main

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"QuickRename/internal/config"
	"QuickRename/internal/filelist"
	"QuickRename/internal/listing"
	"QuickRename/internal/naming"
	"QuickRename/internal/renamer"
	"QuickRename/internal/watch"
)

const prefLastFolder = "lastFolder"

/* -------------------- App State -------------------- */

type AppState struct {
	folderPath string
	total      int // files in the folder before filters
	files      filelist.List
	watcher    *watch.Watcher
}

type ui struct {
	app    fyne.App
	window fyne.Window
	cfg    config.Config
	log    zerolog.Logger
	state  *AppState

	folderLabel *widget.Label
	countLabel  *widget.Label
	statusLabel *widget.Label
	autoRefresh *widget.Check
	renameBtn   *widget.Button

	limits  *limitOptions
	options *renameOptions
	table   *fileTable
}

func newUI(a fyne.App, cfg config.Config, log zerolog.Logger) *ui {
	u := &ui{
		app:    a,
		window: a.NewWindow("Quick Rename"),
		cfg:    cfg,
		log:    log,
		state:  &AppState{},
	}
	u.window.Resize(fyne.NewSize(1040, 720))

	u.folderLabel = widget.NewLabel("Folder: (none)")
	u.folderLabel.Truncation = fyne.TextTruncateEllipsis
	u.countLabel = widget.NewLabel("No folder selected.")
	u.countLabel.TextStyle = fyne.TextStyle{Bold: true}
	u.statusLabel = widget.NewLabel("")
	u.statusLabel.Importance = widget.DangerImportance
	u.statusLabel.Wrapping = fyne.TextWrapWord

	u.limits = newLimitOptions(u.reload)
	u.options = newRenameOptions(u.preview)
	u.options.backup.SetChecked(!cfg.NoBackup)
	u.table = newFileTable(&u.state.files, u.preview)

	u.autoRefresh = widget.NewCheck("Auto-refresh", func(on bool) { u.watchFolder() })

	u.window.SetContent(u.layout())
	u.window.SetOnClosed(u.stopWatching)
	u.setEnabled(false)
	return u
}

/* -------------------- Layout -------------------- */

func (u *ui) layout() fyne.CanvasObject {
	selectBtn := widget.NewButtonWithIcon("Open Directory…", theme.FolderOpenIcon(), u.chooseFolder)
	refreshBtn := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), func() {
		if u.state.folderPath != "" {
			u.loadFolder(u.state.folderPath, false)
		}
	})
	aboutBtn := widget.NewButton("About", func() {
		dialog.ShowInformation("About Quick Rename",
			"Quick Rename renames the checked files of a folder in one go.\n\n"+
				"Pick a folder, check the files, arrange their order, choose the\n"+
				"rename options and watch the preview before renaming.",
			u.window)
	})
	topBar := container.NewBorder(nil, nil,
		container.NewHBox(selectBtn, refreshBtn),
		container.NewHBox(u.autoRefresh, aboutBtn),
		u.folderLabel,
	)

	loadPresetBtn := widget.NewButtonWithIcon("Load preset…", theme.FileIcon(), u.choosePreset)
	savePresetBtn := widget.NewButtonWithIcon("Save preset…", theme.DocumentSaveIcon(), u.savePreset)
	u.renameBtn = widget.NewButtonWithIcon("Rename", theme.ConfirmIcon(), u.startRename)
	u.renameBtn.Importance = widget.HighImportance

	left := container.NewVScroll(container.NewVBox(
		u.options.content(),
		widget.NewSeparator(),
		container.NewHBox(loadPresetBtn, savePresetBtn),
	))
	right := container.NewBorder(
		container.NewVBox(u.limits.content(), u.countLabel, widget.NewSeparator()),
		container.NewVBox(u.statusLabel, container.NewBorder(nil, nil, nil, u.renameBtn)),
		nil, nil,
		u.table.content(),
	)

	split := container.NewHSplit(left, right)
	split.Offset = 0.36
	return container.NewBorder(topBar, nil, nil, nil, split)
}

func (u *ui) setEnabled(on bool) {
	if on {
		u.renameBtn.Enable()
	} else {
		u.renameBtn.Disable()
	}
}

/* -------------------- Folder -------------------- */

func (u *ui) chooseFolder() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, u.window)
			return
		}
		if uri == nil {
			return
		}
		u.openFolder(uri.Path())
	}, u.window)

	start := u.app.Preferences().String(prefLastFolder)
	if start == "" {
		start, _ = homedir.Dir()
	}
	if start != "" {
		if l, err := storage.ListerForURI(storage.NewFileURI(start)); err == nil {
			d.SetLocation(l)
		}
	}
	d.Show()
}

// openFolder switches to path and starts over with its files.
func (u *ui) openFolder(path string) {
	u.stopWatching()
	u.state.folderPath = path
	u.folderLabel.SetText("Folder: " + path)
	u.app.Preferences().SetString(prefLastFolder, path)
	u.log.Info().Str("dir", path).Msg("folder selected")

	if u.loadFolder(path, false) {
		u.watchFolder()
	}
}

// reload lists the current folder again, keeping order and checks.
func (u *ui) reload() {
	if u.state.folderPath != "" {
		u.loadFolder(u.state.folderPath, true)
	}
}

// loadFolder lists path through the filters. keep preserves the order and
// check state of files still present; otherwise the list starts over.
func (u *ui) loadFolder(path string, keep bool) bool {
	all, err := listing.List(path)
	if err != nil {
		u.log.Error().Err(err).Str("dir", path).Msg("listing folder failed")
		dialog.ShowError(err, u.window)
		u.state.total = 0
		u.state.files.Reset(nil)
		u.table.reset()
		u.setEnabled(false)
		u.updateCount()
		return false
	}

	shown := u.limits.filter().Apply(all)
	u.state.total = len(all)
	if keep {
		u.state.files.Sync(shown)
	} else {
		u.state.files.Reset(shown)
		u.table.reset()
	}
	u.log.Debug().Str("dir", path).Int("files", len(all)).Int("shown", len(shown)).Msg("folder listed")

	u.setEnabled(true)
	u.updateCount()
	u.preview()
	return true
}

func (u *ui) updateCount() {
	if u.state.folderPath == "" {
		u.countLabel.SetText("No folder selected.")
		return
	}
	u.countLabel.SetText(fmt.Sprintf("Showing %d of %d files, %d checked.",
		u.state.files.Len(), u.state.total, len(u.state.files.Checked())))
}

func (u *ui) watchFolder() {
	u.stopWatching()
	if !u.autoRefresh.Checked || u.state.folderPath == "" {
		return
	}
	w, err := watch.New(u.state.folderPath, watch.DefaultDelay, func() {
		fyne.Do(u.reload)
	}, u.log)
	if err != nil {
		u.log.Warn().Err(err).Msg("auto-refresh unavailable")
		return
	}
	u.state.watcher = w
}

func (u *ui) stopWatching() {
	if u.state.watcher == nil {
		return
	}
	if err := u.state.watcher.Close(); err != nil {
		u.log.Debug().Err(err).Msg("closing folder watcher")
	}
	u.state.watcher = nil
}

/* -------------------- Preview -------------------- */

// preview recomputes the preview column for the checked files. Problems
// are reported in the status line; the Rename button reports them in a
// dialog.
func (u *ui) preview() {
	u.state.files.ClearPreview()
	u.statusLabel.SetText("")
	defer func() {
		u.updateCount()
		u.table.list.Refresh()
	}()

	if !u.options.preview.Checked || u.state.folderPath == "" {
		return
	}

	cfg := u.options.settings().Config()
	checked := u.state.files.Checked()
	names := make([]string, len(checked))
	for i, e := range checked {
		names[i] = e.Name
	}

	if err := renamer.Validate(u.state.folderPath, names, cfg, false); err != nil {
		u.statusLabel.SetText("⚠ " + err.Error())
		return
	}

	results := naming.Preview(naming.Sequence(names, cfg.Start()), cfg)
	if dups := naming.FindDuplicates(results); len(dups) > 0 {
		bad := dups.Sources()
		invalid := make(map[int]bool)
		for _, e := range checked {
			if bad[e.Name] {
				invalid[e.ID] = true
			}
		}
		u.state.files.SetPreview(nil, invalid)
		u.statusLabel.SetText("⚠ " + (&renamer.DuplicateError{Groups: dups}).Error())
		return
	}

	previews := make(map[int]string, len(checked))
	for i, e := range checked {
		previews[e.ID] = results[i].Destination
	}
	u.state.files.SetPreview(previews, nil)
}

/* -------------------- Rename -------------------- */

func (u *ui) buildPlan() (renamer.Plan, error) {
	cfg := u.options.settings().Config()
	return renamer.BuildPlan(u.state.folderPath, u.state.files.CheckedNames(), cfg)
}

func (u *ui) startRename() {
	plan, err := u.buildPlan()
	if err != nil {
		u.showPlanError(err)
		return
	}

	confirm := dialog.NewCustomConfirm("Rename Files?", "Rename", "Cancel",
		container.NewVScroll(widget.NewLabel(renamer.ConfirmMessage(plan))),
		func(ok bool) {
			if ok {
				u.runPlan(plan)
			}
		},
		u.window,
	)
	confirm.Resize(fyne.NewSize(700, 420))
	confirm.Show()
}

func (u *ui) executor() *renamer.Executor {
	return &renamer.Executor{
		Backup:    u.options.backup.Checked,
		BackupDir: u.cfg.BackupDir,
		DryRun:    u.options.dryRun.Checked,
		Log:       u.log,
	}
}

func (u *ui) runPlan(plan renamer.Plan) renamer.Report {
	rep := u.executor().Execute(plan)
	u.log.Info().
		Int("renamed", rep.Count(renamer.StatusRenamed)).
		Int("failed", rep.Count(renamer.StatusFailed)).
		Bool("dryRun", rep.DryRun).
		Msg("batch finished")

	title := "Rename complete"
	if rep.DryRun {
		title = "Dry run complete"
	} else if len(rep.Failed()) > 0 {
		title = "Rename finished with errors"
	}
	dialog.ShowInformation(title, renamer.ResultMessage(rep), u.window)

	if !rep.DryRun {
		u.loadFolder(u.state.folderPath, false)
	}
	return rep
}

func (u *ui) showPlanError(err error) {
	var dupErr *renamer.DuplicateError
	title := "Rename"
	switch {
	case errors.Is(err, renamer.ErrInvalidDirectory):
		title = "Invalid Folder"
	case errors.Is(err, renamer.ErrNothingSelected):
		title = "Invalid Selection"
	case errors.Is(err, renamer.ErrRenumberRequired), errors.Is(err, renamer.ErrInvalidStart):
		title = "Misconfiguration"
	case errors.As(err, &dupErr):
		title = "Duplicates"
		invalid := make(map[int]bool)
		bad := dupErr.Groups.Sources()
		for _, e := range u.state.files.Checked() {
			if bad[e.Name] {
				invalid[e.ID] = true
			}
		}
		u.state.files.SetPreview(nil, invalid)
		u.table.list.Refresh()
	}
	u.log.Warn().Err(err).Msg("rename refused")
	dialog.ShowInformation(title, capitalize(err.Error()), u.window)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

/* -------------------- Presets -------------------- */

func (u *ui) applyPreset(p config.Preset) {
	backup := u.options.backup.Checked
	if p.Backup != nil {
		backup = *p.Backup
	}
	u.options.apply(p.Settings(), backup)
	u.limits.apply(p.FilterSettings())
}

func (u *ui) choosePreset() {
	dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, u.window)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()

		p, err := config.DecodePreset(rc, rc.URI().Name())
		if err != nil {
			dialog.ShowError(err, u.window)
			return
		}
		u.log.Info().Str("preset", rc.URI().Path()).Msg("preset loaded")
		u.applyPreset(p)
	}, u.window)
}

func (u *ui) savePreset() {
	p := config.NewPreset(u.options.settings(), u.limits.filter(), u.options.backup.Checked)
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, u.window)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()

		if err := config.EncodePreset(wc, p); err != nil {
			dialog.ShowError(err, u.window)
			return
		}
		u.log.Info().Str("preset", wc.URI().Path()).Msg("preset saved")
	}, u.window)
	d.SetFileName("quick_rename.toml")
	d.Show()
}
