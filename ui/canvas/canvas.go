// Package canvas provides the fyne widget that displays a plane.
package canvas

import (
	"image"
	"sync"

	"cartesian-plane/internal/gfx"
	"cartesian-plane/internal/plane"
	"cartesian-plane/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// PlaneCanvas repaints the plane from scratch at the current pixel size
// every time fyne asks for a frame.
type PlaneCanvas struct {
	widget.BaseWidget

	raster *fynecanvas.Raster

	mu    sync.RWMutex
	cfg   plane.Config
	frame plane.Frame

	// onHover receives the logical coordinates under the pointer; ok is
	// false when the pointer leaves the grid rectangle or the widget.
	onHover func(p geometry.Point2D, ok bool)
}

var _ desktop.Hoverable = (*PlaneCanvas)(nil)

// NewPlaneCanvas creates a canvas painting cfg.
func NewPlaneCanvas(cfg plane.Config) *PlaneCanvas {
	pc := &PlaneCanvas{cfg: cfg}
	pc.raster = fynecanvas.NewRaster(pc.draw)
	pc.ExtendBaseWidget(pc)
	return pc
}

// SetConfig replaces the paint configuration and schedules a repaint.
func (pc *PlaneCanvas) SetConfig(cfg plane.Config) {
	pc.mu.Lock()
	pc.cfg = cfg
	pc.mu.Unlock()
	pc.Refresh()
}

// Config returns the paint configuration.
func (pc *PlaneCanvas) Config() plane.Config {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.cfg
}

// OnHover sets the pointer coordinate callback.
func (pc *PlaneCanvas) OnHover(callback func(p geometry.Point2D, ok bool)) {
	pc.mu.Lock()
	pc.onHover = callback
	pc.mu.Unlock()
}

// Snapshot paints the plane into a new w x h image.
func (pc *PlaneCanvas) Snapshot(w, h int) *image.RGBA {
	r := gfx.NewRaster(w, h)
	plane.Render(r, pc.Config(), w, h)
	return r.Image()
}

// CreateRenderer implements fyne.Widget.
func (pc *PlaneCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.raster)
}

// MinSize keeps room for the margins and a small grid.
func (pc *PlaneCanvas) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

// Refresh repaints the raster.
func (pc *PlaneCanvas) Refresh() {
	pc.raster.Refresh()
	pc.BaseWidget.Refresh()
}

func (pc *PlaneCanvas) draw(w, h int) image.Image {
	r := gfx.NewRaster(w, h)
	f := plane.Render(r, pc.Config(), w, h)

	pc.mu.Lock()
	pc.frame = f
	pc.mu.Unlock()
	return r.Image()
}

// MouseIn implements desktop.Hoverable.
func (pc *PlaneCanvas) MouseIn(ev *desktop.MouseEvent) {
	pc.hover(ev.Position)
}

// MouseMoved implements desktop.Hoverable.
func (pc *PlaneCanvas) MouseMoved(ev *desktop.MouseEvent) {
	pc.hover(ev.Position)
}

// MouseOut implements desktop.Hoverable.
func (pc *PlaneCanvas) MouseOut() {
	pc.mu.RLock()
	callback := pc.onHover
	pc.mu.RUnlock()
	if callback != nil {
		callback(geometry.Point2D{}, false)
	}
}

func (pc *PlaneCanvas) hover(pos fyne.Position) {
	scale := float32(1)
	if c := fyne.CurrentApp().Driver().CanvasForObject(pc); c != nil {
		scale = c.Scale()
	}
	px := geometry.NewPoint2D(float64(pos.X*scale), float64(pos.Y*scale))

	pc.mu.RLock()
	callback, frame, unit := pc.onHover, pc.frame, pc.cfg.GridUnit
	pc.mu.RUnlock()
	if callback == nil {
		return
	}
	p, ok := pc.logicalAt(frame, unit, px)
	callback(p, ok)
}

func (pc *PlaneCanvas) logicalAt(frame plane.Frame, gridUnit float64, px geometry.Point2D) (geometry.Point2D, bool) {
	if !frame.Grid.Contains(px) {
		return geometry.Point2D{}, false
	}
	return frame.ToLogical(gridUnit, px)
}
