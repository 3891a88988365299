package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/posecoach/schema"
)

// maxNamedMissing is how many missing upper-body parts are enumerated
// before the message falls back to a generic wording.
const maxNamedMissing = 3

// poseTips holds exactly one fixed coaching tip per catalog template,
// emitted only while the score sits below the tip ceiling.
var poseTips = map[schema.TemplateID]string{
	schema.FrontDoubleBiceps: "Raise both fists to ear height and squeeze your biceps hard to open up the pose.",
	schema.FrontLatSpread:    "Plant your fists on your hips and flare your elbows forward to spread the lats wide.",
	schema.SideChest:         "Press your front arm into your chest and twist your torso toward the camera.",
	schema.BackDoubleBiceps:  "Pull your elbows back level with your shoulders and squeeze the shoulder blades together.",
	schema.MostMuscular:      "Roll your shoulders forward and crunch your arms in front of your chest.",
}

// TemplateFeedback derives an ordered list of human-readable messages from
// a score result. Message order is fixed: overall band, missing upper body,
// lower-body framing hint, pose-specific tip. Absent conditions simply omit
// their message.
func TemplateFeedback(result schema.PoseScoreResult, tpl *schema.PoseTemplate) []string {
	messages := []string{bandMessage(result.Score, tpl.Name)}

	var missingUpper []schema.BodyPart
	missingLower := false
	for _, part := range result.MissingParts {
		if schema.IsUpperBody(part) {
			missingUpper = append(missingUpper, part)
		}
		if schema.IsLowerBody(part) {
			missingLower = true
		}
	}

	if len(missingUpper) > 0 {
		messages = append(messages, missingUpperMessage(missingUpper))
	}

	if schema.IsFullBody(tpl.ID) && missingLower && result.Score < schema.TipScoreCeiling {
		messages = append(messages, fmt.Sprintf("Include your lower body in the frame for a complete %s.", tpl.Name))
	}

	if result.Score < schema.TipScoreCeiling {
		if tip, ok := poseTips[tpl.ID]; ok {
			messages = append(messages, tip)
		}
	}

	return messages
}

// bandMessage picks the single overall-score message. Bands are inclusive
// on the lower bound, contiguous and exhaustive over [0,100].
func bandMessage(score int, templateName string) string {
	switch {
	case score >= 95:
		return fmt.Sprintf("Outstanding! You have mastered the %s.", templateName)
	case score >= 80:
		return fmt.Sprintf("Very close! Your %s is almost there.", templateName)
	case score >= 60:
		return fmt.Sprintf("Good effort - keep refining your %s.", templateName)
	case score >= 40:
		return "You are on the right track. Study the reference and adjust."
	default:
		return "Keep practicing! Line yourself up with the reference pose."
	}
}

func missingUpperMessage(missing []schema.BodyPart) string {
	if len(missing) > maxNamedMissing {
		return "Several key upper body parts are hidden - step back so the camera can see your arms and shoulders."
	}
	names := make([]string, len(missing))
	for i, part := range missing {
		names[i] = schema.DisplayName(part)
	}
	return fmt.Sprintf("Make sure your %s are visible to the camera.", strings.Join(names, ", "))
}
