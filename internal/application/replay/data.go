package replay

import (
	"encoding/json"
	"fmt"
	"io"
)

// Version is the current replay format version
const Version = "1.0"

// TouchPoint is one touch in scene coordinates
type TouchPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FrameInput records the touches held during a single frame
type FrameInput struct {
	F int          `json:"f"`           // Frame number
	T []TouchPoint `json:"t,omitempty"` // Touches, in read order
}

// ReplayData contains all data needed to replay a round
type ReplayData struct {
	Version string       `json:"version"`
	Seed    int64        `json:"seed"`
	Frames  []FrameInput `json:"frames"`
}

// Encode writes the replay as indented JSON
func (d ReplayData) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads a replay written by Encode
func Decode(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q", data.Version)
	}
	return &data, nil
}
