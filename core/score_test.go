package core

import (
	"testing"

	"github.com/huangsam/posecoach/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testFrameWidth  = 640
	testFrameHeight = 480
)

// exactDetection builds a keypoint set sitting exactly on a template's
// normalized targets, scaled into pixel space.
func exactDetection(tpl *schema.PoseTemplate) schema.KeypointSet {
	set := make(schema.KeypointSet, len(tpl.Parts))
	for _, part := range tpl.Parts {
		target := tpl.Keypoints[part]
		set[part] = schema.Keypoint{
			Name:       part,
			X:          target.X * testFrameWidth,
			Y:          target.Y * testFrameHeight,
			Confidence: 0.9,
		}
	}
	return set
}

func mustTemplate(t *testing.T, id schema.TemplateID) *schema.PoseTemplate {
	t.Helper()
	tpl, ok := schema.TemplateByID(id)
	require.True(t, ok, "template %s should exist", id)
	return tpl
}

// TestScoreTemplateEmptySet tests the all-missing degenerate case.
func TestScoreTemplateEmptySet(t *testing.T) {
	for _, tpl := range schema.Catalog() {
		t.Run(string(tpl.ID), func(t *testing.T) {
			result := ScoreTemplate(schema.KeypointSet{}, tpl, testFrameWidth, testFrameHeight)

			assert.Equal(t, 0, result.Score)
			assert.Equal(t, 0, result.MatchedCount)
			assert.Equal(t, len(tpl.Parts), result.TotalCount)
			assert.Equal(t, tpl.Parts, result.MissingParts)
		})
	}
}

// TestScoreTemplateExactMatch tests that a perfect detection scores 100.
func TestScoreTemplateExactMatch(t *testing.T) {
	for _, tpl := range schema.Catalog() {
		t.Run(string(tpl.ID), func(t *testing.T) {
			result := ScoreTemplate(exactDetection(tpl), tpl, testFrameWidth, testFrameHeight)

			assert.Equal(t, 100, result.Score)
			assert.Equal(t, len(tpl.Parts), result.MatchedCount)
			assert.Empty(t, result.MissingParts)
		})
	}
}

// TestScoreTemplateCountInvariant verifies matched + missing == total for
// partial detections.
func TestScoreTemplateCountInvariant(t *testing.T) {
	tpl := mustTemplate(t, schema.FrontDoubleBiceps)
	detected := exactDetection(tpl)
	delete(detected, schema.LeftKnee)
	delete(detected, schema.RightAnkle)
	delete(detected, schema.Nose)

	result := ScoreTemplate(detected, tpl, testFrameWidth, testFrameHeight)

	assert.Equal(t, result.TotalCount, result.MatchedCount+len(result.MissingParts))
	assert.Equal(t, len(tpl.Parts), result.TotalCount)
	assert.ElementsMatch(t,
		[]schema.BodyPart{schema.Nose, schema.LeftKnee, schema.RightAnkle},
		result.MissingParts)
}

// TestScoreTemplateMonotonicDecay verifies the score never increases as a
// single part drifts away from its target.
func TestScoreTemplateMonotonicDecay(t *testing.T) {
	tpl := mustTemplate(t, schema.SideChest)

	prev := 101
	for _, drift := range []float64{0, 5, 10, 20, 40, 80, 160} {
		detected := exactDetection(tpl)
		kp := detected[schema.LeftWrist]
		kp.X += drift
		detected[schema.LeftWrist] = kp

		score := ScoreTemplate(detected, tpl, testFrameWidth, testFrameHeight).Score
		assert.LessOrEqual(t, score, prev, "drift %v should not raise the score", drift)
		prev = score
	}
}

// TestScoreTemplateDistanceFalloff verifies a part stops contributing once
// it drifts 20% of the frame extent from its target.
func TestScoreTemplateDistanceFalloff(t *testing.T) {
	tpl := mustTemplate(t, schema.SideChest)

	near := exactDetection(tpl)
	far := exactDetection(tpl)
	kpNear := near[schema.Nose]
	kpNear.X += 0.05 * testFrameWidth
	near[schema.Nose] = kpNear
	kpFar := far[schema.Nose]
	kpFar.X += 0.25 * testFrameWidth // beyond the falloff horizon
	far[schema.Nose] = kpFar

	missing := exactDetection(tpl)
	delete(missing, schema.Nose)

	nearScore := ScoreTemplate(near, tpl, testFrameWidth, testFrameHeight).Score
	farScore := ScoreTemplate(far, tpl, testFrameWidth, testFrameHeight).Score
	missingScore := ScoreTemplate(missing, tpl, testFrameWidth, testFrameHeight).Score

	assert.Greater(t, nearScore, farScore)
	// A fully drifted part contributes zero similarity but full weight, so
	// it scores the same as a missing part's zero contribution would with
	// that weight still in the denominator.
	assert.Equal(t, missingScore, farScore)
}

// TestScoreTemplateWeighted verifies per-part overrides change the blend.
func TestScoreTemplateWeighted(t *testing.T) {
	tpl := mustTemplate(t, schema.SideChest)
	detected := exactDetection(tpl)
	delete(detected, schema.Nose)

	baseline := ScoreTemplateWeighted(detected, tpl, testFrameWidth, testFrameHeight, nil)
	// Zeroing the missing part's weight removes its penalty entirely.
	boosted := ScoreTemplateWeighted(detected, tpl, testFrameWidth, testFrameHeight,
		map[schema.BodyPart]float64{schema.Nose: 0})

	assert.Less(t, baseline.Score, boosted.Score)
	assert.Equal(t, 100, boosted.Score)
}

// TestScoreTemplateDeterminism verifies identical inputs give identical
// output.
func TestScoreTemplateDeterminism(t *testing.T) {
	tpl := mustTemplate(t, schema.FrontLatSpread)
	detected := exactDetection(tpl)
	kp := detected[schema.LeftElbow]
	kp.X += 13
	kp.Y -= 7
	detected[schema.LeftElbow] = kp

	first := ScoreTemplate(detected, tpl, testFrameWidth, testFrameHeight)
	for range 10 {
		assert.Equal(t, first, ScoreTemplate(detected, tpl, testFrameWidth, testFrameHeight))
	}
}
