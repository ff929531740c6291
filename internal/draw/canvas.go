// Package draw renders game frames to ANSI terminals using half-block characters.
package draw

import (
	"math"
	"slices"

	"github.com/tomz197/rocket/internal/geometry"
)

// Block characters used by the canvas.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// Canvas is a pixel buffer with 2x vertical resolution. Callers draw in logical
// world coordinates; the canvas scales them to terminal cells.
type Canvas struct {
	cols, rows int
	subRows    int    // rows * 2
	pixels     []bool // [y*cols + x]
	prev       []bool // pixels as of the last Render
	full       bool   // next Render repaints every cell

	logical geometry.Size
	scaleX  float64
	scaleY  float64

	outline       []geometry.Point
	scaled        []geometry.Point
	intersections []float64
}

// NewCanvas creates a canvas of cols x rows terminal cells showing the given logical area.
func NewCanvas(cols, rows int, logical geometry.Size) *Canvas {
	c := &Canvas{logical: logical}
	c.Resize(cols, rows)
	return c
}

// Resize changes the terminal size, keeping the logical area. The next Render repaints everything.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	if cols != c.cols || rows != c.rows || c.pixels == nil {
		c.cols, c.rows, c.subRows = cols, rows, rows*2
		c.pixels = make([]bool, c.subRows*cols)
		c.prev = make([]bool, c.subRows*cols)
	}
	c.scaleX = float64(cols) / c.logical.Width
	c.scaleY = float64(c.subRows) / c.logical.Height
	c.full = true
}

// Invalidate forces the next Render to repaint every cell.
func (c *Canvas) Invalidate() {
	c.full = true
}

// Cols returns the terminal column count.
func (c *Canvas) Cols() int { return c.cols }

// Rows returns the terminal row count.
func (c *Canvas) Rows() int { return c.rows }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// Pixel reports whether the pixel at pixel coordinates (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.cols || y < 0 || y >= c.subRows {
		return false
	}
	return c.pixels[y*c.cols+x]
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.cols && y >= 0 && y < c.subRows {
		c.pixels[y*c.cols+x] = true
	}
}

func (c *Canvas) toPixel(p geometry.Point) (int, int) {
	return int(math.Floor(p.X * c.scaleX)), int(math.Floor(p.Y * c.scaleY))
}

// Dot sets the pixel under a logical point.
func (c *Canvas) Dot(p geometry.Point) {
	c.setPixel(c.toPixel(p))
}

// Line draws a line between two logical points using Bresenham's algorithm.
func (c *Canvas) Line(a, b geometry.Point) {
	x1, y1 := c.toPixel(a)
	x2, y2 := c.toPixel(b)

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws the outline of a polygon and, if filled, its interior.
func (c *Canvas) Polygon(points []geometry.Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fill(points)
	}
	for i := range points {
		c.Line(points[i], points[(i+1)%len(points)])
	}
}

// Circle draws a circle of logical radius r. Circles smaller than a pixel become a dot.
func (c *Canvas) Circle(center geometry.Point, r float64, filled bool) {
	rx, ry := r*c.scaleX, r*c.scaleY
	if rx < 1 && ry < 1 {
		c.Dot(center)
		return
	}

	segments := max(8, int(2*math.Pi*max(rx, ry)))
	if cap(c.outline) < segments {
		c.outline = make([]geometry.Point, segments)
	}
	pts := c.outline[:segments]
	for i := range pts {
		pts[i] = center.Add(geometry.FromAngle(2 * math.Pi * float64(i) / float64(segments)).Scale(r))
	}
	c.Polygon(pts, filled)
}

// fill is a scanline fill in pixel space.
func (c *Canvas) fill(points []geometry.Point) {
	if cap(c.scaled) < len(points) {
		c.scaled = make([]geometry.Point, len(points))
	}
	scaled := c.scaled[:len(points)]
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, p := range points {
		scaled[i] = geometry.Point{X: p.X * c.scaleX, Y: p.Y * c.scaleY}
		minY = min(minY, scaled[i].Y)
		maxY = max(maxY, scaled[i].Y)
	}

	for y := int(math.Floor(minY)); y <= int(math.Ceil(maxY)); y++ {
		scanY := float64(y) + 0.5
		xs := c.intersections[:0]
		for i := range scaled {
			p1, p2 := scaled[i], scaled[(i+1)%len(scaled)]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersections = xs
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes the cells that changed since the last Render to cw.
func (c *Canvas) Render(cw *ChunkWriter) {
	for row := 0; row < c.rows; row++ {
		top := row * 2 * c.cols
		bottom := top + c.cols
		for col := 0; col < c.cols; col++ {
			t, b := c.pixels[top+col], c.pixels[bottom+col]
			if !c.full && t == c.prev[top+col] && b == c.prev[bottom+col] {
				continue
			}
			cw.MoveCursor(col+1, row+1)
			cw.WriteRune(cell(t, b))
		}
	}
	copy(c.prev, c.pixels)
	c.full = false
}

func cell(top, bottom bool) rune {
	switch {
	case top && bottom:
		return BlockFull
	case top:
		return BlockUpperHalf
	case bottom:
		return BlockLowerHalf
	default:
		return BlockEmpty
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
