package replay

import (
	"github.com/younwookim/starfall/internal/domain/entity"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// GetInput returns the touches for the current frame and advances
func (r *Replayer) GetInput() ([]entity.Vec, bool) {
	if r.frame >= len(r.data.Frames) {
		return nil, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	var touches []entity.Vec
	for _, t := range fi.T {
		touches = append(touches, entity.Vec{X: t.X, Y: t.Y})
	}
	return touches, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing: one held touch per frame
func CreateTestReplayData(frames int, x, y float64) ReplayData {
	data := ReplayData{
		Version: Version,
		Seed:    12345,
		Frames:  make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F: i,
			T: []TouchPoint{{X: x, Y: y}},
		}
	}

	return data
}
