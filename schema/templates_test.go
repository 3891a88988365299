package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCatalogIntegrity verifies the structural invariants every bundled
// template must satisfy.
func TestCatalogIntegrity(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 5)

	seen := make(map[TemplateID]bool)
	for _, tpl := range catalog {
		t.Run(string(tpl.ID), func(t *testing.T) {
			assert.False(t, seen[tpl.ID], "duplicate template id")
			seen[tpl.ID] = true

			assert.NotEmpty(t, tpl.Name)
			assert.NotEmpty(t, tpl.Description)
			assert.NotEmpty(t, tpl.Parts)
			assert.Len(t, tpl.Keypoints, len(tpl.Parts))

			for _, part := range tpl.Parts {
				target, ok := tpl.Keypoints[part]
				require.True(t, ok, "part %s declared but has no target", part)
				assert.Contains(t, ValidBodyParts, part)
				assert.GreaterOrEqual(t, target.X, 0.0, "part %s", part)
				assert.LessOrEqual(t, target.X, 1.0, "part %s", part)
				assert.GreaterOrEqual(t, target.Y, 0.0, "part %s", part)
				assert.LessOrEqual(t, target.Y, 1.0, "part %s", part)
			}
		})
	}
}

// TestCatalogPartOrderUnique verifies no template declares a part twice.
func TestCatalogPartOrderUnique(t *testing.T) {
	for _, tpl := range Catalog() {
		parts := make(map[BodyPart]bool)
		for _, part := range tpl.Parts {
			assert.False(t, parts[part], "%s declares %s twice", tpl.ID, part)
			parts[part] = true
		}
	}
}

// TestTemplateByID covers hit and miss lookups.
func TestTemplateByID(t *testing.T) {
	tpl, ok := TemplateByID(SideChest)
	require.True(t, ok)
	assert.Equal(t, SideChest, tpl.ID)

	_, ok = TemplateByID("warrior-pose")
	assert.False(t, ok)
}

// TestAllTemplateIDs verifies the id list matches catalog order.
func TestAllTemplateIDs(t *testing.T) {
	ids := AllTemplateIDs()
	catalog := Catalog()

	require.Len(t, ids, len(catalog))
	for i, tpl := range catalog {
		assert.Equal(t, tpl.ID, ids[i])
	}
}

// TestIsFullBody verifies full-body classification matches which templates
// actually target lower-body parts below the hips.
func TestIsFullBody(t *testing.T) {
	assert.True(t, IsFullBody(FrontDoubleBiceps))
	assert.True(t, IsFullBody(FrontLatSpread))
	assert.False(t, IsFullBody(SideChest))
	assert.False(t, IsFullBody(BackDoubleBiceps))
	assert.False(t, IsFullBody(MostMuscular))

	for _, tpl := range Catalog() {
		targetsKnees := false
		for _, part := range tpl.Parts {
			if part == LeftKnee || part == RightKnee {
				targetsKnees = true
			}
		}
		assert.Equal(t, IsFullBody(tpl.ID), targetsKnees, "template %s", tpl.ID)
	}
}
