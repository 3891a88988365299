package core

import (
	"math"

	"github.com/huangsam/posecoach/schema"
)

// AnalyzePose runs the template-free geometric checks on a keypoint set and
// returns an ordered list of severity-tagged feedback items. The set should
// be built with the analyzer's visibility floor; fewer than three visible
// keypoints short-circuits into a single low-confidence info message.
// Independent checks all fire; a clean pose yields exactly one success
// message keyed by which body regions were visible.
func AnalyzePose(kps schema.KeypointSet, mode schema.AnalysisMode, frameWidth, frameHeight int) []schema.FeedbackItem {
	if len(kps) < schema.MinAnalyzeKeypoints {
		return []schema.FeedbackItem{{
			Message:  "Not enough of your body is visible - move into the frame and improve the lighting.",
			Severity: schema.SeverityInfo,
		}}
	}

	leftShoulder, hasLeftShoulder := kps[schema.LeftShoulder]
	rightShoulder, hasRightShoulder := kps[schema.RightShoulder]
	leftHip, hasLeftHip := kps[schema.LeftHip]
	rightHip, hasRightHip := kps[schema.RightHip]
	leftKnee, hasLeftKnee := kps[schema.LeftKnee]
	rightKnee, hasRightKnee := kps[schema.RightKnee]
	leftEye, hasLeftEye := kps[schema.LeftEye]
	rightEye, hasRightEye := kps[schema.RightEye]
	nose, hasNose := kps[schema.Nose]

	hasUpperBody := hasLeftShoulder && hasRightShoulder
	hasLowerBody := hasLeftHip && hasRightHip
	hasFace := hasNose || (hasLeftEye && hasRightEye)

	var items []schema.FeedbackItem

	switch mode {
	case schema.PhotographyMode:
		if hasLeftEye && hasRightEye && lineSlope(leftEye, rightEye) > schema.LevelnessThreshold {
			items = append(items, schema.FeedbackItem{
				Message:  "Your eye line is tilted - level your head for the shot.",
				Severity: schema.SeverityWarning,
			})
		}
		if hasNose && frameWidth > 0 {
			offset := math.Abs(nose.X-float64(frameWidth)/2) / float64(frameWidth)
			if offset > schema.CenteringThreshold {
				items = append(items, schema.FeedbackItem{
					Part:     schema.Nose,
					Message:  "Your face is off-center - shift toward the middle of the frame.",
					Severity: schema.SeverityWarning,
				})
			}
		}
		if hasUpperBody && lineSlope(leftShoulder, rightShoulder) > schema.LevelnessThreshold {
			items = append(items, schema.FeedbackItem{
				Message:  "Square your shoulders to the camera.",
				Severity: schema.SeverityWarning,
			})
		}
	default: // fitness
		if hasUpperBody && lineSlope(leftShoulder, rightShoulder) > schema.LevelnessThreshold {
			items = append(items, schema.FeedbackItem{
				Message:  "Your shoulders are uneven - level them out.",
				Severity: schema.SeverityWarning,
			})
		}
		if hasLowerBody && lineSlope(leftHip, rightHip) > schema.LevelnessThreshold {
			items = append(items, schema.FeedbackItem{
				Message:  "Your hips are tilted - square them up.",
				Severity: schema.SeverityWarning,
			})
		}
		if hasLeftKnee && hasRightKnee && lineSlope(leftKnee, rightKnee) > schema.LevelnessThreshold {
			items = append(items, schema.FeedbackItem{
				Message:  "Your knees are uneven - balance your stance.",
				Severity: schema.SeverityWarning,
			})
		}
		if hasUpperBody && hasLowerBody && frameWidth > 0 {
			shoulderMidX := (leftShoulder.X + rightShoulder.X) / 2
			hipMidX := (leftHip.X + rightHip.X) / 2
			if math.Abs(shoulderMidX-hipMidX)/float64(frameWidth) > schema.LevelnessThreshold {
				items = append(items, schema.FeedbackItem{
					Message:  "Your shoulders are not stacked over your hips - straighten your torso.",
					Severity: schema.SeverityWarning,
				})
			}
		}
	}

	if len(items) == 0 {
		items = append(items, cleanPoseItem(hasUpperBody, hasLowerBody, hasFace))
	}
	return items
}

// lineSlope returns the absolute slope between two keypoints. Pixel units
// cancel, so the value is comparable against normalized thresholds. A
// vertical pair degenerates to zero rather than firing a spurious warning.
func lineSlope(a, b schema.Keypoint) float64 {
	dx := math.Abs(a.X - b.X)
	if dx == 0 {
		return 0
	}
	return math.Abs(a.Y-b.Y) / dx
}

func cleanPoseItem(hasUpperBody, hasLowerBody, hasFace bool) schema.FeedbackItem {
	item := schema.FeedbackItem{Severity: schema.SeveritySuccess}
	switch {
	case hasUpperBody && hasLowerBody:
		item.Message = "PERFECT! Your full body pose looks great!"
	case hasUpperBody:
		item.Message = "PERFECT! Your upper body posture looks great!"
	case hasFace:
		item.Message = "PERFECT! Great framing on your face!"
	default:
		item.Message = "Looking good - show more of your body for a full check."
	}
	return item
}
