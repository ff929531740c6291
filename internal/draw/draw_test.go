package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tomz197/rocket/internal/geometry"
)

func newTestCanvas() *Canvas {
	// 10 columns and 10 sub-pixel rows over a 100x100 area: one pixel per 10 units.
	return NewCanvas(10, 5, geometry.NewSize(100, 100))
}

func countPixels(c *Canvas) int {
	n := 0
	for y := 0; y < c.Rows()*2; y++ {
		for x := 0; x < c.Cols(); x++ {
			if c.Pixel(x, y) {
				n++
			}
		}
	}
	return n
}

func TestDotScalesToPixels(t *testing.T) {
	c := newTestCanvas()
	c.Dot(geometry.Point{X: 55, Y: 35})

	if !c.Pixel(5, 3) {
		t.Fatalf("pixel (5,3) not set")
	}
	if countPixels(c) != 1 {
		t.Fatalf("dot set %d pixels, want 1", countPixels(c))
	}

	c.Dot(geometry.Point{X: -5, Y: 500})
	if countPixels(c) != 1 {
		t.Fatalf("out of range dot was drawn")
	}
}

func TestLine(t *testing.T) {
	c := newTestCanvas()
	c.Line(geometry.Point{X: 0, Y: 0}, geometry.Point{X: 95, Y: 0})

	for x := 0; x < 10; x++ {
		if !c.Pixel(x, 0) {
			t.Fatalf("pixel (%d,0) missing from horizontal line", x)
		}
	}
	if countPixels(c) != 10 {
		t.Fatalf("line set %d pixels, want 10", countPixels(c))
	}
}

func TestFilledPolygonCoversInterior(t *testing.T) {
	c := newTestCanvas()
	square := []geometry.Point{{X: 20, Y: 20}, {X: 70, Y: 20}, {X: 70, Y: 70}, {X: 20, Y: 70}}
	c.Polygon(square, true)

	if !c.Pixel(4, 4) {
		t.Fatalf("interior pixel not filled")
	}
	if c.Pixel(0, 0) || c.Pixel(9, 9) {
		t.Fatalf("pixel outside the polygon was set")
	}
}

func TestRenderEmitsOnlyChanges(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	c := newTestCanvas()

	c.Render(cw)
	if got := strings.Count(cw.buf.String(), "H"); got != 50 {
		t.Fatalf("first render wrote %d cells, want all 50", got)
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}

	c.Render(cw)
	if cw.Pending() != 0 {
		t.Fatalf("unchanged frame wrote %q", cw.buf.String())
	}

	c.Dot(geometry.Point{X: 55, Y: 35})
	c.Render(cw)
	if got, want := cw.buf.String(), "\033[2;6H"+string(BlockLowerHalf); got != want {
		t.Fatalf("changed frame wrote %q, want %q", got, want)
	}
	cw.Flush()

	c.Clear()
	c.Render(cw)
	if got, want := cw.buf.String(), "\033[2;6H "; got != want {
		t.Fatalf("erase wrote %q, want %q", got, want)
	}
}

func TestResizeRepaints(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	c := newTestCanvas()
	c.Render(cw)
	cw.Flush()

	c.Resize(4, 2)
	c.Render(cw)
	if got := strings.Count(cw.buf.String(), "H"); got != 8 {
		t.Fatalf("render after resize wrote %d cells, want 8", got)
	}
}

func TestChunkWriterOffsetAndFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	cw.SetOffset(2, 3)
	cw.WriteAt(1, 1, "hi")
	long := strings.Repeat("x", 3*maxChunkSize+7)
	cw.WriteString(long)

	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if want := "\033[4;3Hhi" + long; out.String() != want {
		t.Fatalf("flushed output mismatch: got %d bytes, want %d", out.Len(), len(want))
	}
	if cw.Pending() != 0 {
		t.Fatalf("buffer not reset after flush")
	}
}

func TestSceneDrawsEveryKind(t *testing.T) {
	c := NewCanvas(100, 50, geometry.NewSize(100, 100))
	s := NewScene(c)

	s.DrawPlayer(50, 50, 0)
	if !c.Pixel(50, 50) {
		t.Fatalf("player hull does not cover its position")
	}

	s.Clear()
	s.DrawEnemy(30, 30)
	if c.Pixel(30, 30) {
		t.Fatalf("enemy outline should be hollow")
	}
	if countPixels(c) == 0 {
		t.Fatalf("enemy drew nothing")
	}

	s.Clear()
	s.DrawBullet(10, 10)
	s.DrawParticle(80, 80, 0.1)
	if !c.Pixel(10, 10) || !c.Pixel(80, 80) {
		t.Fatalf("bullet or particle missing")
	}
}
