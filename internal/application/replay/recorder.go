package replay

import (
	"github.com/younwookim/starfall/internal/domain/entity"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version: Version,
			Seed:    seed,
			Frames:  make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's touches
func (r *Recorder) RecordFrame(touches []entity.Vec) {
	if !r.recording {
		return
	}

	fi := FrameInput{F: r.frame}
	for _, t := range touches {
		fi.T = append(fi.T, TouchPoint{X: t.X, Y: t.Y})
	}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded replay
func (r *Recorder) Data() ReplayData {
	return r.data
}
