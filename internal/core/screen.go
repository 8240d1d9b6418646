package core

// HalfBlock is the glyph used to show two vertically stacked pixels in one
// terminal cell: the foreground paints the upper half, the background the lower.
const HalfBlock = '▀'

// Cell is a single terminal character with its colors.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Screen is a 2D cell buffer for terminal presentation.
// It decouples the pixel surface from the terminal: the platform samples a
// Surface into a Screen, then turns the Screen into styled text.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next
// frame repaints every cell anyway.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = max(width, 0)
	s.height = max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with blank cells on a black background.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', FG: ColorWhite, BG: ColorBlack}
		}
	}
}

// SetCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetCell(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', FG: ColorWhite, BG: ColorBlack}
	}
	return s.cells[y][x]
}

// Sample fills the screen from a surface using nearest-neighbor sampling.
// Every cell covers two pixel rows, drawn with HalfBlock.
func (s *Screen) Sample(src *Surface) {
	if s.width == 0 || s.height == 0 {
		return
	}
	sw, sh := src.Width(), src.Height()
	rows := s.height * 2
	for cy := 0; cy < s.height; cy++ {
		top := (2*cy*sh + sh/2) / rows
		bottom := ((2*cy+1)*sh + sh/2) / rows
		for cx := 0; cx < s.width; cx++ {
			px := (cx*sw + sw/2) / s.width
			s.cells[cy][cx] = Cell{
				Rune: HalfBlock,
				FG:   src.At(px, top),
				BG:   src.At(px, bottom),
			}
		}
	}
}

// CellToPixel maps a cell coordinate back to the center of the surface
// area it samples. Used to translate terminal mouse reports.
func (s *Screen) CellToPixel(cx, cy int, src *Surface) Point {
	if s.width == 0 || s.height == 0 {
		return Point{}
	}
	x := (cx*src.Width() + src.Width()/2) / s.width
	y := (cy*src.Height() + src.Height()/2) / s.height
	return Point{
		X: Clamp(x, 0, src.Width()-1),
		Y: Clamp(y, 0, src.Height()-1),
	}
}
