package main

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/validation"
	"fyne.io/fyne/v2/widget"

	"QuickRename/internal/listing"
	"QuickRename/internal/naming"
)

/* -------------------- Rename options -------------------- */

var paddingChoices = []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}

type renameOptions struct {
	addPrefix *widget.Check
	prefix    *widget.Entry

	fullRename *widget.Check
	newName    *widget.Entry

	searchReplace *widget.Check
	find          *widget.Entry
	replace       *widget.Entry

	renumber *widget.Check
	start    *widget.Entry
	padding  *widget.Select
	dot      *widget.Check

	removeExt *widget.Check
	changeExt *widget.Check
	newExt    *widget.Entry

	backup  *widget.Check
	preview *widget.Check
	dryRun  *widget.Check

	// loading suppresses onChanged while a preset is applied.
	loading   bool
	onChanged func()
}

func newRenameOptions(onChanged func()) *renameOptions {
	o := &renameOptions{onChanged: onChanged, loading: true}
	defer func() { o.loading = false }()
	changed := func() {
		if !o.loading && o.onChanged != nil {
			o.onChanged()
		}
	}
	entry := func(hint string) *widget.Entry {
		e := widget.NewEntry()
		e.SetPlaceHolder(hint)
		e.OnChanged = func(string) { changed() }
		e.Disable()
		return e
	}

	o.prefix = entry(naming.PrefixHint)
	o.addPrefix = widget.NewCheck("Add prefix", func(on bool) {
		setEnabled(on, o.prefix)
		changed()
	})

	o.newName = entry(naming.NewNameHint)
	o.fullRename = widget.NewCheck("Complete rename", func(on bool) {
		setEnabled(on, o.newName)
		changed()
	})

	o.find = entry(naming.FindHint)
	o.replace = entry(naming.ReplaceHint)
	o.searchReplace = widget.NewCheck("Search and replace", func(on bool) {
		setEnabled(on, o.find, o.replace)
		changed()
	})

	o.start = entry("start")
	o.start.SetText(strconv.Itoa(naming.DefaultStart))
	o.start.Validator = validation.NewRegexp(`^\s*\d+\s*$`, "start must be a whole number of 0 or more")
	o.padding = widget.NewSelect(paddingChoices, func(string) { changed() })
	o.padding.SetSelected(strconv.Itoa(naming.DefaultPadding))
	o.padding.Disable()
	o.dot = widget.NewCheck("Dot separator", func(bool) { changed() })
	o.dot.Disable()
	o.renumber = widget.NewCheck("Renumber", func(on bool) {
		setEnabled(on, o.start, o.padding, o.dot)
		changed()
	})

	o.newExt = entry(naming.NewExtensionHint)
	o.removeExt = widget.NewCheck("Remove extension", func(on bool) {
		if on {
			o.changeExt.SetChecked(false)
		}
		changed()
	})
	o.changeExt = widget.NewCheck("Change extension", func(on bool) {
		if on {
			o.removeExt.SetChecked(false)
		}
		setEnabled(on, o.newExt)
		changed()
	})

	o.backup = widget.NewCheck("Backup files", nil)
	o.backup.SetChecked(true)
	o.preview = widget.NewCheck("Preview", func(bool) { changed() })
	o.preview.SetChecked(true)
	o.dryRun = widget.NewCheck("Dry run (don’t rename)", nil)

	return o
}

type disableable interface {
	Enable()
	Disable()
}

func setEnabled(on bool, ws ...disableable) {
	for _, w := range ws {
		if on {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

func (o *renameOptions) content() fyne.CanvasObject {
	return container.NewVBox(
		widget.NewLabelWithStyle("Rename options", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, o.addPrefix, nil, o.prefix),
		container.NewBorder(nil, nil, o.fullRename, nil, o.newName),
		container.NewBorder(nil, nil, o.searchReplace, nil, container.NewGridWithColumns(2, o.find, o.replace)),
		container.NewBorder(nil, nil, o.renumber, o.dot,
			container.NewGridWithColumns(2, o.start, container.NewBorder(nil, nil, widget.NewLabel("Padding"), nil, o.padding))),
		container.NewHBox(o.removeExt),
		container.NewBorder(nil, nil, o.changeExt, nil, o.newExt),
		widget.NewSeparator(),
		container.NewHBox(o.backup, o.preview, o.dryRun),
	)
}

// startNumber returns the start value, or -1 when the field does not hold
// a whole number.
func (o *renameOptions) startNumber() int {
	n, err := strconv.Atoi(strings.TrimSpace(o.start.Text))
	if err != nil || n < 0 {
		return -1
	}
	return n
}

func (o *renameOptions) settings() naming.Settings {
	pad, _ := strconv.Atoi(o.padding.Selected)
	return naming.Settings{
		AddPrefix:       o.addPrefix.Checked,
		Prefix:          o.prefix.Text,
		FullRename:      o.fullRename.Checked,
		NewName:         o.newName.Text,
		SearchReplace:   o.searchReplace.Checked,
		Find:            o.find.Text,
		Replace:         o.replace.Text,
		Renumber:        o.renumber.Checked,
		Start:           o.startNumber(),
		Padding:         pad,
		Dot:             o.dot.Checked,
		RemoveExtension: o.removeExt.Checked,
		ChangeExtension: o.changeExt.Checked,
		NewExtension:    o.newExt.Text,
	}
}

// apply loads s into the widgets and fires onChanged once.
func (o *renameOptions) apply(s naming.Settings, backup bool) {
	o.loading = true
	o.prefix.SetText(s.Prefix)
	o.addPrefix.SetChecked(s.AddPrefix)
	o.newName.SetText(s.NewName)
	o.fullRename.SetChecked(s.FullRename)
	o.find.SetText(s.Find)
	o.replace.SetText(s.Replace)
	o.searchReplace.SetChecked(s.SearchReplace)
	o.start.SetText(strconv.Itoa(s.Start))
	o.padding.SetSelected(strconv.Itoa(min(max(s.Padding, 0), naming.MaxPadding)))
	o.dot.SetChecked(s.Dot)
	o.renumber.SetChecked(s.Renumber)
	o.newExt.SetText(s.NewExtension)
	o.changeExt.SetChecked(s.ChangeExtension)
	o.removeExt.SetChecked(s.RemoveExtension)
	o.backup.SetChecked(backup)
	o.loading = false
	if o.onChanged != nil {
		o.onChanged()
	}
}

/* -------------------- Limit options -------------------- */

type limitOptions struct {
	limitExt  *widget.Check
	extension *widget.Entry
	limitText *widget.Check
	text      *widget.Entry

	loading   bool
	onChanged func()
}

func newLimitOptions(onChanged func()) *limitOptions {
	l := &limitOptions{onChanged: onChanged, loading: true}
	defer func() { l.loading = false }()
	changed := func() {
		if !l.loading && l.onChanged != nil {
			l.onChanged()
		}
	}

	l.extension = widget.NewEntry()
	l.extension.SetPlaceHolder(listing.ExtensionHint)
	l.extension.OnChanged = func(string) { changed() }
	l.extension.Disable()
	l.limitExt = widget.NewCheck("Limit file type", func(on bool) {
		setEnabled(on, l.extension)
		changed()
	})

	l.text = widget.NewEntry()
	l.text.SetPlaceHolder(listing.SearchHint)
	l.text.OnChanged = func(string) { changed() }
	l.text.Disable()
	l.limitText = widget.NewCheck("Limit file text", func(on bool) {
		setEnabled(on, l.text)
		changed()
	})
	return l
}

func (l *limitOptions) content() fyne.CanvasObject {
	return container.NewGridWithColumns(2,
		container.NewBorder(nil, nil, l.limitExt, nil, l.extension),
		container.NewBorder(nil, nil, l.limitText, nil, l.text),
	)
}

func (l *limitOptions) filter() listing.Filter {
	return listing.Filter{
		LimitExtension: l.limitExt.Checked,
		Extension:      l.extension.Text,
		LimitText:      l.limitText.Checked,
		Text:           l.text.Text,
	}
}

func (l *limitOptions) apply(f listing.Filter) {
	l.loading = true
	l.extension.SetText(f.Extension)
	l.limitExt.SetChecked(f.LimitExtension)
	l.text.SetText(f.Text)
	l.limitText.SetChecked(f.LimitText)
	l.loading = false
	if l.onChanged != nil {
		l.onChanged()
	}
}
