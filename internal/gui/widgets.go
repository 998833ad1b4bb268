//go:build !nogui

package gui

import (
	"image/color"

	"aetherfm/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// entryRow is one row of the entry list. Rows are recycled by the list, so
// the row only remembers which item it currently shows.
type entryRow struct {
	widget.BaseWidget
	app   *App
	id    widget.ListItemID
	icon  *widget.Icon
	label *widget.Label
}

func newEntryRow(a *App) *entryRow {
	r := &entryRow{
		app:   a,
		id:    -1,
		icon:  widget.NewIcon(theme.FileIcon()),
		label: widget.NewLabel("Template entry name"),
	}
	r.ExtendBaseWidget(r)
	return r
}

func (r *entryRow) update(id widget.ListItemID, e types.Entry) {
	r.id = id
	r.icon.SetResource(entryIcon(e.Icon))
	r.label.SetText(e.Name)
}

func (r *entryRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewBorder(nil, nil, r.icon, nil, r.label))
}

// Tapped selects the row
func (r *entryRow) Tapped(*fyne.PointEvent) {
	r.app.entryList.Select(r.id)
}

// DoubleTapped enters a folder or opens a file
func (r *entryRow) DoubleTapped(*fyne.PointEvent) {
	r.app.entryList.Select(r.id)
	r.app.activateEntry(r.id)
}

// TappedSecondary selects the row and shows the context menu
func (r *entryRow) TappedSecondary(e *fyne.PointEvent) {
	r.app.entryList.Select(r.id)
	r.app.showContextMenu(e.AbsolutePosition)
}

// contextArea sits under the entry list and catches right clicks on empty
// space, where only the create and paste items apply.
type contextArea struct {
	widget.BaseWidget
	app *App
}

func newContextArea(a *App) *contextArea {
	c := &contextArea{app: a}
	c.ExtendBaseWidget(c)
	return c
}

func (c *contextArea) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

func (c *contextArea) MinSize() fyne.Size {
	return fyne.NewSize(1, 1)
}

func (c *contextArea) TappedSecondary(e *fyne.PointEvent) {
	c.app.entryList.UnselectAll()
	c.app.mu.Lock()
	c.app.selected = ""
	c.app.mu.Unlock()
	c.app.showContextMenu(e.AbsolutePosition)
}
