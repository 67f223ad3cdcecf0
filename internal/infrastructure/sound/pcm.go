package sound

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

const bytesPerFrame = 4 // 16-bit stereo

// Render drains s into 16-bit little-endian stereo PCM
func Render(s beep.Streamer) []byte {
	buf := make([][2]float64, 512)
	var out []byte

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			var frame [bytesPerFrame]byte
			binary.LittleEndian.PutUint16(frame[0:], uint16(toInt16(buf[i][0])))
			binary.LittleEndian.PutUint16(frame[2:], uint16(toInt16(buf[i][1])))
			out = append(out, frame[:]...)
		}
		if !ok || n < len(buf) {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
