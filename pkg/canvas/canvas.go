// Package canvas provides a passive observer that rasterizes the
// synchronized value into an RGBA image.
//
// A Canvas has no get/set surface and never originates changes; it is the
// render-only side of a cell. Attach it with Cell.AttachObserver and it
// repaints on every value change, reading current state through the supplier
// it was constructed with.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas renders a textual view of a cell's value into an in-memory image.
type Canvas struct {
	img      *image.RGBA
	source   func() string
	fg, bg   color.Color
	repaints int
}

// New creates a canvas of the given pixel size. source supplies the text to
// render; it is read on every repaint, so pass a closure over the cell:
//
//	c := canvas.New(160, 40, func() string {
//	    return strconv.Itoa(cell.Get())
//	})
//	cell.AttachObserver(c)
//	c.Refresh() // first paint
func New(width, height int, source func() string) *Canvas {
	c := &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		source: source,
		fg:     color.Black,
		bg:     color.White,
	}
	return c
}

// Refresh repaints the canvas from its source. Called by the cell after
// every value change.
func (c *Canvas) Refresh() {
	c.repaints++
	c.paint()
}

func (c *Canvas) paint() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.bg), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.fg),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, c.img.Bounds().Dy()/2+basicfont.Face7x13.Ascent/2),
	}
	d.DrawString(c.source())
}

// Image returns the canvas's backing image.
func (c *Canvas) Image() image.Image {
	return c.img
}

// Repaints returns how many times Refresh has run.
func (c *Canvas) Repaints() int {
	return c.repaints
}
