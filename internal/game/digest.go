package game

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Digest hashes every value in the frame. Equal frames have equal digests, so
// two runs can be compared without keeping their full history.
func (f Frame) Digest() uint64 {
	h := fnv.New64a()
	var buf []byte
	put := func(vs ...float64) {
		for _, v := range vs {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}

	put(float64(len(f.Particles)), float64(len(f.Bullets)), float64(len(f.Enemies)), float64(f.Score))
	for _, p := range f.Particles {
		put(p.X, p.Y, p.Decay)
	}
	for _, b := range f.Bullets {
		put(b.X, b.Y)
	}
	for _, e := range f.Enemies {
		put(e.X, e.Y)
	}
	put(f.Player.X, f.Player.Y, f.Player.Heading)

	h.Write(buf)
	return h.Sum64()
}
