package core

import (
	"testing"

	"github.com/huangsam/posecoach/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRankTemplatesCoversCatalog verifies every catalog template appears
// exactly once in descending score order.
func TestRankTemplatesCoversCatalog(t *testing.T) {
	tpl := mustTemplate(t, schema.FrontDoubleBiceps)
	ranked := RankTemplates(exactDetection(tpl), testFrameWidth, testFrameHeight)

	require.Len(t, ranked, len(schema.Catalog()))

	seen := make(map[schema.TemplateID]bool)
	for i, entry := range ranked {
		assert.False(t, seen[entry.Template.ID], "duplicate template %s", entry.Template.ID)
		seen[entry.Template.ID] = true
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Result.Score, entry.Result.Score)
		}
	}
}

// TestBestMatchPicksOwnTemplate verifies a perfect detection of each pose
// ranks its own template first.
func TestBestMatchPicksOwnTemplate(t *testing.T) {
	for _, tpl := range schema.Catalog() {
		t.Run(string(tpl.ID), func(t *testing.T) {
			best := BestMatch(exactDetection(tpl), testFrameWidth, testFrameHeight)

			assert.Equal(t, tpl.ID, best.Template.ID)
			assert.Equal(t, 100, best.Result.Score)
		})
	}
}

// TestRankTemplatesEmptySet verifies an empty detection still ranks all
// templates, all at zero, in catalog order.
func TestRankTemplatesEmptySet(t *testing.T) {
	ranked := RankTemplates(schema.KeypointSet{}, testFrameWidth, testFrameHeight)

	require.Len(t, ranked, len(schema.Catalog()))
	for i, entry := range ranked {
		assert.Equal(t, 0, entry.Result.Score)
		assert.Equal(t, schema.Catalog()[i].ID, entry.Template.ID)
	}
}
