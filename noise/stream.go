package noise

import (
	"encoding/binary"
	"io"

	"github.com/gopxl/beep"
)

var _ beep.Streamer = (*Gen)(nil)

// Stream implements beep.Streamer. Samples keep their 16-bit level, so both
// backends play at the same loudness.
func (g *Gen) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := float64(g.Sample()) / (1 << 15)
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *Gen) Err() error {
	return nil
}

// PCMReader reads the generator as mono signed 16-bit little-endian frames.
// Only whole frames are written; a trailing odd byte is left alone, and a
// buffer too small for one frame is an error.
type PCMReader struct {
	Gen *Gen
}

func (r *PCMReader) Read(p []byte) (int, error) {
	n := len(p) &^ 1
	if n == 0 && len(p) > 0 {
		return 0, io.ErrShortBuffer
	}
	for i := 0; i < n; i += 2 {
		binary.LittleEndian.PutUint16(p[i:], uint16(r.Gen.Sample()))
	}
	return n, nil
}
