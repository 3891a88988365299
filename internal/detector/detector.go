// Package detector abstracts the external pose-estimation model. The model
// is a black box that, given an image frame, returns named body keypoints;
// this package consumes its serialized output from capture files and drives
// the detection cadence.
package detector

import (
	"context"
	"errors"

	"github.com/huangsam/posecoach/schema"
)

// ErrExhausted is returned by Detect once a replayed capture has no more
// frames. It signals a clean end of stream, not a failure.
var ErrExhausted = errors.New("capture exhausted")

// Detector is the handle to a pose source. Implementations own exactly one
// underlying resource, released once by Close at teardown. Detect must not
// be called concurrently with itself; the Runner enforces this.
type Detector interface {
	// Detect returns the next frame of detected poses. A frame with zero
	// poses is a valid no-detection outcome, not an error.
	Detect(ctx context.Context) (*schema.Frame, error)

	// Close releases the detector's resources.
	Close() error
}
