// Package schema has the shared models, enums and catalog data for all parts of posecoach.
package schema

// Keypoint is a single named anatomical landmark reported by the external
// pose-estimation model, positioned in source-image pixel space with a
// detector confidence in [0,1].
type Keypoint struct {
	Name       BodyPart `json:"name" validate:"required"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Confidence float64  `json:"score" validate:"gte=0,lte=1"`
}

// KeypointSet indexes detected keypoints by body part. It holds only entries
// above the configured confidence floor and is rebuilt every detection cycle.
type KeypointSet map[BodyPart]Keypoint

// Pose is one detected subject in a frame. The model may return several
// subjects per frame but only the first one is scored.
type Pose struct {
	Keypoints []Keypoint `json:"keypoints" validate:"dive"`
}

// Frame is a single detection result from the external model: the source
// image dimensions plus zero or more detected poses.
type Frame struct {
	Width  int    `json:"width" validate:"gt=0"`
	Height int    `json:"height" validate:"gt=0"`
	Poses  []Pose `json:"poses" validate:"dive"`
}

// FirstPose returns the keypoints of the first detected pose, or nil when
// the frame contains no poses.
func (f *Frame) FirstPose() []Keypoint {
	if f == nil || len(f.Poses) == 0 {
		return nil
	}
	return f.Poses[0].Keypoints
}

// TemplatePoint is a normalized target position inside the unit square.
type TemplatePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PoseTemplate is a fixed reference pose defined by normalized target
// positions for a subset of body parts. Templates are immutable and shared
// read-only by all scoring calls. Parts preserves the declared scoring
// order since Go map iteration is unordered.
type PoseTemplate struct {
	ID          TemplateID                 `json:"id"`
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	ImageRef    string                     `json:"image_ref"`
	Parts       []BodyPart                 `json:"parts"`
	Keypoints   map[BodyPart]TemplatePoint `json:"keypoints"`
}

// PoseScoreResult is the outcome of scoring one detected pose against one
// template. MatchedCount plus the number of missing parts always equals
// TotalCount, and Score is clamped to [0,100].
type PoseScoreResult struct {
	Score        int        `json:"score"`
	MatchedCount int        `json:"matched_count"`
	TotalCount   int        `json:"total_count"`
	MissingParts []BodyPart `json:"missing_parts,omitempty"`
}

// FeedbackItem is a single severity-tagged coaching message. Part is set
// only when the message concerns one specific landmark.
type FeedbackItem struct {
	Part     BodyPart `json:"part,omitempty"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// TemplateScore pairs a catalog template with its score for one frame,
// used for best-match ranking.
type TemplateScore struct {
	Template *PoseTemplate   `json:"template"`
	Result   PoseScoreResult `json:"result"`
}

// BatchResult is the scored outcome for one capture file in a batch run.
type BatchResult struct {
	CapturePath string          `json:"capture_path"`
	FrameWidth  int             `json:"frame_width"`
	FrameHeight int             `json:"frame_height"`
	Result      PoseScoreResult `json:"result"`
}
