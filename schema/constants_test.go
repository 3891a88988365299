package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPartWeight verifies table hits and the default for unknown parts.
func TestPartWeight(t *testing.T) {
	tests := []struct {
		name string
		part BodyPart
		want float64
	}{
		{"shoulder", LeftShoulder, 1.5},
		{"wrist", RightWrist, 1.5},
		{"nose", Nose, 1.0},
		{"eye", LeftEye, 0.8},
		{"ear", RightEar, 0.7},
		{"hip", LeftHip, 0.8},
		{"knee", RightKnee, 0.6},
		{"ankle", LeftAnkle, 0.4},
		{"unknown", BodyPart("tail"), DefaultPartWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PartWeight(tt.part), 1e-9)
		})
	}
}

// TestPartWeightsReturnsCopy verifies callers cannot mutate the table.
func TestPartWeightsReturnsCopy(t *testing.T) {
	weights := PartWeights()
	weights[Nose] = 99

	assert.InDelta(t, 1.0, PartWeight(Nose), 1e-9)
	assert.Len(t, PartWeights(), len(ValidBodyParts))
}

// TestBodyRegions verifies region membership is disjoint and matches the
// shoulder-to-wrist and hip-to-knee groups.
func TestBodyRegions(t *testing.T) {
	upper := []BodyPart{LeftShoulder, RightShoulder, LeftElbow, RightElbow, LeftWrist, RightWrist}
	lower := []BodyPart{LeftHip, RightHip, LeftKnee, RightKnee}

	for _, part := range upper {
		assert.True(t, IsUpperBody(part), "%s", part)
		assert.False(t, IsLowerBody(part), "%s", part)
	}
	for _, part := range lower {
		assert.True(t, IsLowerBody(part), "%s", part)
		assert.False(t, IsUpperBody(part), "%s", part)
	}
	for _, part := range []BodyPart{Nose, LeftEye, RightEar, LeftAnkle} {
		assert.False(t, IsUpperBody(part), "%s", part)
		assert.False(t, IsLowerBody(part), "%s", part)
	}
}

// TestDisplayName verifies underscores become spaces.
func TestDisplayName(t *testing.T) {
	assert.Equal(t, "left shoulder", DisplayName(LeftShoulder))
	assert.Equal(t, "nose", DisplayName(Nose))
}
