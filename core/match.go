package core

import (
	"sort"

	"github.com/huangsam/posecoach/schema"
)

// RankTemplates scores a detected keypoint set against every catalog
// template and returns the results sorted by score in descending order.
// Catalog order breaks ties so the ranking is stable across runs.
func RankTemplates(detected schema.KeypointSet, frameWidth, frameHeight int) []schema.TemplateScore {
	catalog := schema.Catalog()
	scores := make([]schema.TemplateScore, 0, len(catalog))
	for _, tpl := range catalog {
		scores = append(scores, schema.TemplateScore{
			Template: tpl,
			Result:   ScoreTemplate(detected, tpl, frameWidth, frameHeight),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Result.Score > scores[j].Result.Score
	})
	return scores
}

// BestMatch returns the highest-scoring catalog template for a frame.
func BestMatch(detected schema.KeypointSet, frameWidth, frameHeight int) schema.TemplateScore {
	return RankTemplates(detected, frameWidth, frameHeight)[0]
}
