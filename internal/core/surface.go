package core

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Surface is the RGB raster every frame is rendered into.
// Hosts read the finished frame through Image or Pix and present it
// on their own display (terminal cells, an Ebiten window, a PNG file).
type Surface struct {
	img  *image.RGBA
	face font.Face
}

// NewSurface allocates a surface of the given size in pixels.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("core: invalid surface size %dx%d", width, height)
	}
	s := &Surface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		face: basicfont.Face7x13,
	}
	s.Clear(ColorBlack)
	return s, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.img.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.img.Rect.Dy()
}

// Image exposes the underlying raster, e.g. for png.Encode.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// Pix returns the raw RGBA bytes, row-major, 4 bytes per pixel.
func (s *Surface) Pix() []byte {
	return s.img.Pix
}

// Clear fills the entire surface with c.
func (s *Surface) Clear(c Color) {
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Set colors a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, c Color) {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return
	}
	i := s.img.PixOffset(x, y)
	s.img.Pix[i+0] = c.R
	s.img.Pix[i+1] = c.G
	s.img.Pix[i+2] = c.B
	s.img.Pix[i+3] = 0xff
}

// At returns the color of a pixel. Out-of-bounds reads return black.
func (s *Surface) At(x, y int) Color {
	if x < 0 || x >= s.Width() || y < 0 || y >= s.Height() {
		return ColorBlack
	}
	i := s.img.PixOffset(x, y)
	return Color{R: s.img.Pix[i], G: s.img.Pix[i+1], B: s.img.Pix[i+2]}
}

// FillCircle draws a filled circle of radius r centered at (cx, cy).
func (s *Surface) FillCircle(cx, cy, r int, c Color) {
	if r <= 0 {
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				s.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// StrokeCircle draws a ring of the given width whose outer edge has radius r.
func (s *Surface) StrokeCircle(cx, cy, r, width int, c Color) {
	if r <= 0 || width <= 0 {
		return
	}
	if width >= r {
		s.FillCircle(cx, cy, r, c)
		return
	}
	outer := r * r
	inner := (r - width) * (r - width)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d <= outer && d > inner {
				s.Set(cx+dx, cy+dy, c)
			}
		}
	}
}

// DrawText renders a single line of text with its top-left corner at (x, y).
// Glyphs that extend beyond the surface are clipped.
func (s *Surface) DrawText(x, y int, text string, c Color) {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(color.Color(c)),
		Face: s.face,
		Dot:  fixed.P(x, y+s.face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}

// TextWidth returns the rendered width of text in pixels.
func (s *Surface) TextWidth(text string) int {
	return font.MeasureString(s.face, text).Ceil()
}

// EncodePNG writes the current frame as a PNG image.
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("core: cannot encode frame: %w", err)
	}
	return nil
}
