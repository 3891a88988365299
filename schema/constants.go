package schema

import "strings"

// Custom string types for type safety.
type (
	// BodyPart represents a named anatomical landmark.
	BodyPart string

	// Severity represents the classification of a feedback message.
	Severity string

	// AnalysisMode represents the rule set used by template-free analysis.
	AnalysisMode string

	// OutputMode represents the format of the output.
	OutputMode string

	// TemplateID represents a catalog reference pose.
	TemplateID string
)

// All body parts reported by the external model (COCO-17 naming).
const (
	Nose          BodyPart = "nose"
	LeftEye       BodyPart = "left_eye"
	RightEye      BodyPart = "right_eye"
	LeftEar       BodyPart = "left_ear"
	RightEar      BodyPart = "right_ear"
	LeftShoulder  BodyPart = "left_shoulder"
	RightShoulder BodyPart = "right_shoulder"
	LeftElbow     BodyPart = "left_elbow"
	RightElbow    BodyPart = "right_elbow"
	LeftWrist     BodyPart = "left_wrist"
	RightWrist    BodyPart = "right_wrist"
	LeftHip       BodyPart = "left_hip"
	RightHip      BodyPart = "right_hip"
	LeftKnee      BodyPart = "left_knee"
	RightKnee     BodyPart = "right_knee"
	LeftAnkle     BodyPart = "left_ankle"
	RightAnkle    BodyPart = "right_ankle"
)

// All severities supported.
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

// All analysis modes supported.
const (
	FitnessMode     AnalysisMode = "fitness" // default
	PhotographyMode AnalysisMode = "photography"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// Threshold constants shared by the scorer and the analyzer. These values
// define existing behavior and must not be duplicated as literals elsewhere.
const (
	// DefaultMinConfidence is the visibility floor for template scoring.
	DefaultMinConfidence = 0.3

	// AnalyzeMinConfidence is the visibility floor for rule-based analysis.
	AnalyzeMinConfidence = 0.2

	// MinAnalyzeKeypoints is the minimum number of visible keypoints the
	// analyzer needs before any geometric check is meaningful.
	MinAnalyzeKeypoints = 3

	// LevelnessThreshold is the maximum slope of a shoulder/hip/knee/eye
	// line before a levelness warning fires.
	LevelnessThreshold = 0.1

	// CenteringThreshold is the maximum horizontal nose offset from frame
	// center, as a fraction of frame width, before an off-center warning.
	CenteringThreshold = 0.2

	// DistanceFalloff maps normalized distance to similarity: a part's
	// similarity reaches zero once it drifts 20% of the frame extent away
	// from its target.
	DistanceFalloff = 5.0

	// TipScoreCeiling is the score below which pose-specific tips and the
	// lower-body framing hint are emitted.
	TipScoreCeiling = 70
)

// partWeights is the static per-part scoring weight table. Upper-body parts
// dominate because they carry the most visual information about a pose.
var partWeights = map[BodyPart]float64{
	LeftShoulder:  1.5,
	RightShoulder: 1.5,
	LeftElbow:     1.5,
	RightElbow:    1.5,
	LeftWrist:     1.5,
	RightWrist:    1.5,
	Nose:          1.0,
	LeftEye:       0.8,
	RightEye:      0.8,
	LeftEar:       0.7,
	RightEar:      0.7,
	LeftHip:       0.8,
	RightHip:      0.8,
	LeftKnee:      0.6,
	RightKnee:     0.6,
	LeftAnkle:     0.4,
	RightAnkle:    0.4,
}

// DefaultPartWeight is the weight applied to any part missing from the table.
const DefaultPartWeight = 1.0

// PartWeight returns the scoring weight for a body part.
func PartWeight(part BodyPart) float64 {
	if w, ok := partWeights[part]; ok {
		return w
	}
	return DefaultPartWeight
}

// PartWeights returns a copy of the static weight table, for display and
// for merging config overrides.
func PartWeights() map[BodyPart]float64 {
	out := make(map[BodyPart]float64, len(partWeights))
	for part, w := range partWeights {
		out[part] = w
	}
	return out
}

// upperBodyParts are the parts that matter most for pose legibility.
var upperBodyParts = map[BodyPart]struct{}{
	LeftShoulder:  {},
	RightShoulder: {},
	LeftElbow:     {},
	RightElbow:    {},
	LeftWrist:     {},
	RightWrist:    {},
}

// lowerBodyParts are the parts covered by the lower-body framing hint.
var lowerBodyParts = map[BodyPart]struct{}{
	LeftHip:   {},
	RightHip:  {},
	LeftKnee:  {},
	RightKnee: {},
}

// IsUpperBody reports whether a part belongs to the shoulder/elbow/wrist group.
func IsUpperBody(part BodyPart) bool {
	_, ok := upperBodyParts[part]
	return ok
}

// IsLowerBody reports whether a part belongs to the hip/knee group.
func IsLowerBody(part BodyPart) bool {
	_, ok := lowerBodyParts[part]
	return ok
}

// DisplayName renders a body part for humans by replacing underscores.
func DisplayName(part BodyPart) string {
	return strings.ReplaceAll(string(part), "_", " ")
}

// ValidBodyParts lists every part the detector can report.
var ValidBodyParts = map[BodyPart]struct{}{
	Nose: {}, LeftEye: {}, RightEye: {}, LeftEar: {}, RightEar: {},
	LeftShoulder: {}, RightShoulder: {}, LeftElbow: {}, RightElbow: {},
	LeftWrist: {}, RightWrist: {}, LeftHip: {}, RightHip: {},
	LeftKnee: {}, RightKnee: {}, LeftAnkle: {}, RightAnkle: {},
}

// ValidAnalysisModes lists all valid analysis modes.
var ValidAnalysisModes = map[AnalysisMode]struct{}{
	FitnessMode:     {},
	PhotographyMode: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSeverities lists all valid severities.
var ValidSeverities = map[Severity]struct{}{
	SeverityInfo:    {},
	SeverityWarning: {},
	SeverityError:   {},
	SeveritySuccess: {},
}
