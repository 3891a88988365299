package detector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/huangsam/posecoach/schema"
)

// validate checks capture frames against the schema struct tags. A single
// instance is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadCaptureFrames reads every frame from a capture file. Captures are
// either a single JSON frame object or a JSONL stream of them; a plain
// json.Decoder loop handles both. Each frame is validated before use so a
// malformed capture fails loudly at the edge instead of inside the engine.
func LoadCaptureFrames(path string) ([]schema.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open capture %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	var frames []schema.Frame
	dec := json.NewDecoder(file)
	for {
		var frame schema.Frame
		if err := dec.Decode(&frame); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("cannot parse capture %s: %w", path, err)
		}
		if err := validate.Struct(&frame); err != nil {
			return nil, fmt.Errorf("invalid frame %d in capture %s: %w", len(frames), path, err)
		}
		for _, pose := range frame.Poses {
			for _, kp := range pose.Keypoints {
				if _, ok := schema.ValidBodyParts[kp.Name]; !ok {
					return nil, fmt.Errorf("invalid frame %d in capture %s: unknown body part %q", len(frames), path, kp.Name)
				}
			}
		}
		frames = append(frames, frame)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("capture %s contains no frames", path)
	}
	return frames, nil
}

// LoadCaptureFrame reads a capture file expected to hold one frame and
// returns its first frame.
func LoadCaptureFrame(path string) (*schema.Frame, error) {
	frames, err := LoadCaptureFrames(path)
	if err != nil {
		return nil, err
	}
	return &frames[0], nil
}

// CaptureDetector replays the frames of a capture file in order, one frame
// per Detect call. It stands in for the live model during development and
// in tests, honoring the same single-caller contract.
type CaptureDetector struct {
	mu     sync.Mutex
	frames []schema.Frame
	next   int
	closed bool
}

// NewCaptureDetector loads a capture file into a replayable detector.
// A load failure here is the model-initialization-failure case: the caller
// reports it once and disables detection for the session.
func NewCaptureDetector(path string) (*CaptureDetector, error) {
	frames, err := LoadCaptureFrames(path)
	if err != nil {
		return nil, err
	}
	return &CaptureDetector{frames: frames}, nil
}

// Detect returns the next recorded frame, or ErrExhausted after the last.
func (d *CaptureDetector) Detect(ctx context.Context) (*schema.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, fmt.Errorf("capture detector is closed")
	}
	if d.next >= len(d.frames) {
		return nil, ErrExhausted
	}
	frame := d.frames[d.next]
	d.next++
	return &frame, nil
}

// Remaining reports how many frames have not been replayed yet.
func (d *CaptureDetector) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.frames) - d.next
}

// Close marks the detector as released. Further Detect calls fail.
func (d *CaptureDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}
