package core

import (
	"math"

	"github.com/huangsam/posecoach/schema"
)

// ScoreTemplate compares a detected keypoint set against a reference
// template and returns a weighted similarity score in [0,100] with
// matched/missing bookkeeping. Iteration follows the template's declared
// part order, so identical inputs always produce identical output.
func ScoreTemplate(detected schema.KeypointSet, tpl *schema.PoseTemplate, frameWidth, frameHeight int) schema.PoseScoreResult {
	return ScoreTemplateWeighted(detected, tpl, frameWidth, frameHeight, nil)
}

// ScoreTemplateWeighted is ScoreTemplate with per-part weight overrides.
// Parts absent from the override map fall back to the static weight table.
func ScoreTemplateWeighted(detected schema.KeypointSet, tpl *schema.PoseTemplate, frameWidth, frameHeight int, overrides map[schema.BodyPart]float64) schema.PoseScoreResult {
	result := schema.PoseScoreResult{TotalCount: len(tpl.Parts)}

	if len(detected) == 0 {
		result.MissingParts = append(result.MissingParts, tpl.Parts...)
		return result
	}

	fw := float64(frameWidth)
	fh := float64(frameHeight)

	var totalScore, totalWeight float64
	for _, part := range tpl.Parts {
		weight := partWeight(part, overrides)
		totalWeight += weight

		kp, ok := detected[part]
		if !ok {
			result.MissingParts = append(result.MissingParts, part)
			continue
		}

		// Each axis is normalized by its own frame extent so the distance
		// metric is dimensionless regardless of aspect ratio.
		target := tpl.Keypoints[part]
		dx := (target.X*fw - kp.X) / fw
		dy := (target.Y*fh - kp.Y) / fh
		distance := math.Sqrt(dx*dx + dy*dy)

		similarity := math.Max(0, 1-distance*schema.DistanceFalloff)
		totalScore += similarity * weight
		result.MatchedCount++
	}

	if totalWeight > 0 {
		result.Score = clampScore(math.Round(totalScore / totalWeight * 100))
	}
	return result
}

func partWeight(part schema.BodyPart, overrides map[schema.BodyPart]float64) float64 {
	if w, ok := overrides[part]; ok {
		return w
	}
	return schema.PartWeight(part)
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
