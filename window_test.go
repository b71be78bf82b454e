package main

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuickRename/internal/config"
	"QuickRename/internal/listing"
	"QuickRename/internal/naming"
	"QuickRename/internal/renamer"
)

func newTestUI(t *testing.T, files ...string) (*ui, string) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte(f), 0o644))
	}
	cfg := config.Default()
	cfg.NoBackup = true
	u := newUI(a, cfg, zerolog.Nop())
	t.Cleanup(u.stopWatching)
	return u, dir
}

func entryNames(u *ui) []string {
	var out []string
	for _, e := range u.state.files.Entries() {
		out = append(out, e.Name)
	}
	return out
}

func previews(u *ui) map[string]string {
	out := map[string]string{}
	for _, e := range u.state.files.Entries() {
		if e.Preview != "" {
			out[e.Name] = e.Preview
		}
	}
	return out
}

func folderNames(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			out = append(out, e.Name())
		}
	}
	sort.Strings(out)
	return out
}

func checkAll(u *ui) {
	u.table.checkAll(true)
}

func TestOpenFolderAndFilter(t *testing.T) {
	u, dir := newTestUI(t, "b.png", "a.txt", "c.png")
	assert.True(t, u.renameBtn.Disabled())

	u.openFolder(dir)
	assert.Equal(t, []string{"a.txt", "b.png", "c.png"}, entryNames(u))
	assert.False(t, u.renameBtn.Disabled())
	assert.Equal(t, dir, u.app.Preferences().String(prefLastFolder))
	assert.Contains(t, u.countLabel.Text, "Showing 3 of 3 files")

	test.Tap(u.limits.limitExt)
	u.limits.extension.SetText("png")
	assert.Equal(t, []string{"b.png", "c.png"}, entryNames(u))
	assert.Contains(t, u.countLabel.Text, "Showing 2 of 3 files")
}

func TestPreviewFollowsOrderAndOptions(t *testing.T) {
	u, dir := newTestUI(t, "x.jpg", "y.jpg", "z.jpg")
	u.openFolder(dir)
	checkAll(u)
	assert.Equal(t, map[string]string{"x.jpg": "x.jpg", "y.jpg": "y.jpg", "z.jpg": "z.jpg"}, previews(u))

	u.options.apply(naming.Settings{
		FullRename: true, NewName: "img",
		Renumber: true, Start: 1, Padding: 2,
	}, false)
	assert.Equal(t, map[string]string{"x.jpg": "img01.jpg", "y.jpg": "img02.jpg", "z.jpg": "img03.jpg"}, previews(u))

	u.table.list.Select(2)
	u.table.moveSelected(-2)
	assert.Equal(t, []string{"z.jpg", "x.jpg", "y.jpg"}, entryNames(u))
	assert.Equal(t, map[string]string{"z.jpg": "img01.jpg", "x.jpg": "img02.jpg", "y.jpg": "img03.jpg"}, previews(u))

	test.Tap(u.options.preview)
	assert.Empty(t, previews(u))
}

func TestPreviewReportsProblems(t *testing.T) {
	u, dir := newTestUI(t, "x.jpg", "y.jpg")
	u.openFolder(dir)
	checkAll(u)

	u.options.apply(naming.Settings{FullRename: true, NewName: "img"}, false)
	assert.Contains(t, u.statusLabel.Text, renamer.ErrRenumberRequired.Error())
	assert.Empty(t, previews(u))

	u.options.apply(naming.Settings{SearchReplace: true, Find: "x", Replace: "y"}, false)
	assert.Contains(t, u.statusLabel.Text, "same name")
	for _, e := range u.state.files.Entries() {
		assert.True(t, e.Invalid, e.Name)
	}
	assert.Empty(t, previews(u))

	u.options.apply(naming.Settings{}, false)
	assert.Empty(t, u.statusLabel.Text)
	for _, e := range u.state.files.Entries() {
		assert.False(t, e.Invalid, e.Name)
	}
}

func TestBuildPlanErrors(t *testing.T) {
	u, dir := newTestUI(t, "x.jpg", "y.jpg")

	_, err := u.buildPlan()
	assert.True(t, errors.Is(err, renamer.ErrInvalidDirectory))

	u.openFolder(dir)
	_, err = u.buildPlan()
	assert.True(t, errors.Is(err, renamer.ErrNothingSelected))

	checkAll(u)
	u.options.apply(naming.Settings{Prefix: "p", AddPrefix: true, Renumber: true}, false)
	u.options.start.SetText("x")
	_, err = u.buildPlan()
	assert.True(t, errors.Is(err, renamer.ErrInvalidStart))
}

func TestRunPlan(t *testing.T) {
	u, dir := newTestUI(t, "x.jpg", "y.jpg", "z.jpg", "skip.txt")
	u.openFolder(dir)
	for _, e := range u.state.files.Entries() {
		if e.Name != "skip.txt" {
			u.state.files.SetChecked(e.ID, true)
		}
	}
	u.options.apply(naming.Settings{
		FullRename: true, NewName: "img",
		Renumber: true, Start: 1, Padding: 2, Dot: true,
	}, false)

	plan, err := u.buildPlan()
	require.NoError(t, err)
	rep := u.runPlan(plan)
	assert.Equal(t, 3, rep.Count(renamer.StatusRenamed))
	assert.Equal(t, []string{"img.01.jpg", "img.02.jpg", "img.03.jpg", "skip.txt"}, folderNames(t, dir))
	assert.Equal(t, []string{"img.01.jpg", "img.02.jpg", "img.03.jpg", "skip.txt"}, entryNames(u))
	assert.Empty(t, u.state.files.Checked())
}

func TestRunPlanDryRunAndBackup(t *testing.T) {
	u, dir := newTestUI(t, "a.txt")
	u.openFolder(dir)
	checkAll(u)
	u.options.apply(naming.Settings{AddPrefix: true, Prefix: "p_"}, true)

	test.Tap(u.options.dryRun)
	plan, err := u.buildPlan()
	require.NoError(t, err)
	rep := u.runPlan(plan)
	assert.True(t, rep.DryRun)
	assert.Equal(t, []string{"a.txt"}, folderNames(t, dir))

	test.Tap(u.options.dryRun)
	rep = u.runPlan(plan)
	assert.Equal(t, 1, rep.Count(renamer.StatusRenamed))
	assert.Equal(t, []string{"p_a.txt"}, folderNames(t, dir))
	require.NotEmpty(t, rep.BackupPath)
	_, err = os.Stat(filepath.Join(rep.BackupPath, "a.txt"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"p_a.txt"}, entryNames(u), "backup folder is not listed")
}

func TestApplyPreset(t *testing.T) {
	u, dir := newTestUI(t, "a.txt", "b.png")
	u.openFolder(dir)

	backup := false
	u.applyPreset(config.Preset{
		Rename: config.RenamePreset{AddPrefix: true, Prefix: "IMG_"},
		Filter: config.FilterPreset{LimitExtension: true, Extension: "png"},
		Backup: &backup,
	})
	assert.Equal(t, []string{"b.png"}, entryNames(u))
	assert.False(t, u.options.backup.Checked)

	checkAll(u)
	assert.Equal(t, map[string]string{"b.png": "IMG_b.png"}, previews(u))
	assert.Equal(t, listing.Filter{LimitExtension: true, Extension: "png"}, u.limits.filter())
}

func TestReloadKeepsOrderAndChecks(t *testing.T) {
	u, dir := newTestUI(t, "a", "b", "c")
	u.openFolder(dir)
	u.table.list.Select(2)
	u.table.moveSelected(-2)
	u.state.files.SetChecked(u.state.files.At(0).ID, true)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "d"), nil, 0o644))
	require.NoError(t, os.Remove(filepath.Join(dir, "a")))
	u.reload()
	assert.Equal(t, []string{"c", "b", "d"}, entryNames(u))
	assert.Equal(t, []string{"c"}, u.state.files.CheckedNames())
}
