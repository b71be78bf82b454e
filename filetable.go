package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"QuickRename/internal/filelist"
)

/* -------------------- File table -------------------- */

// fileRow shows one entry: check box, original name and preview name.
type fileRow struct {
	widget.BaseWidget
	check   *widget.Check
	name    *widget.Label
	preview *widget.Label
}

func newFileRow() *fileRow {
	r := &fileRow{
		check:   widget.NewCheck("", nil),
		name:    widget.NewLabel(""),
		preview: widget.NewLabel(""),
	}
	r.name.Truncation = fyne.TextTruncateEllipsis
	r.preview.Truncation = fyne.TextTruncateEllipsis
	r.ExtendBaseWidget(r)
	return r
}

func (r *fileRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, r.check, nil,
		container.NewGridWithColumns(2, r.name, r.preview)))
}

type fileTable struct {
	files    *filelist.List
	list     *widget.List
	selected int // entry ID, 0 when nothing is selected

	onChanged func()
}

func newFileTable(files *filelist.List, onChanged func()) *fileTable {
	t := &fileTable{files: files, onChanged: onChanged}
	t.list = widget.NewList(
		func() int { return files.Len() },
		func() fyne.CanvasObject { return newFileRow() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { t.updateRow(id, obj.(*fileRow)) },
	)
	t.list.OnSelected = func(id widget.ListItemID) {
		if id < files.Len() {
			t.selected = files.At(id).ID
		}
	}
	t.list.OnUnselected = func(id widget.ListItemID) {
		if id < files.Len() && files.At(id).ID == t.selected {
			t.selected = 0
		}
	}
	return t
}

func (t *fileTable) updateRow(id widget.ListItemID, r *fileRow) {
	if id >= t.files.Len() {
		return
	}
	e := t.files.At(id)

	r.check.OnChanged = nil
	r.check.SetChecked(e.Checked)
	r.check.OnChanged = func(on bool) {
		t.files.SetChecked(e.ID, on)
		t.changed()
	}

	r.name.SetText(e.Name)
	r.preview.SetText(e.Preview)
	switch {
	case e.Invalid:
		r.name.Importance = widget.DangerImportance
		r.preview.Importance = widget.DangerImportance
	case e.Checked:
		r.name.Importance = widget.SuccessImportance
		r.preview.Importance = widget.MediumImportance
	default:
		r.name.Importance = widget.MediumImportance
		r.preview.Importance = widget.MediumImportance
	}
	r.name.Refresh()
	r.preview.Refresh()
}

func (t *fileTable) changed() {
	if t.onChanged != nil {
		t.onChanged()
	}
}

// reset drops the selection after the list was reloaded.
func (t *fileTable) reset() {
	t.selected = 0
	t.list.UnselectAll()
	t.list.Refresh()
}

func (t *fileTable) checkAll(on bool) {
	t.files.CheckAll(on)
	t.changed()
}

// moveSelected moves the selected entry by delta rows.
func (t *fileTable) moveSelected(delta int) {
	i := t.files.Index(t.selected)
	if i < 0 {
		return
	}
	if !t.files.Move(t.selected, i+delta) {
		return
	}
	t.list.Select(t.files.Index(t.selected))
	t.changed()
}

func (t *fileTable) content() fyne.CanvasObject {
	header := container.NewGridWithColumns(2,
		widget.NewLabelWithStyle("Original Files", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("New Name - Preview", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	buttons := container.NewHBox(
		widget.NewButton("Check all", func() { t.checkAll(true) }),
		widget.NewButton("Uncheck all", func() { t.checkAll(false) }),
		widget.NewButtonWithIcon("Move up", theme.MoveUpIcon(), func() { t.moveSelected(-1) }),
		widget.NewButtonWithIcon("Move down", theme.MoveDownIcon(), func() { t.moveSelected(1) }),
	)
	return container.NewBorder(container.NewVBox(header, widget.NewSeparator()), buttons, nil, nil, t.list)
}
