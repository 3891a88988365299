package parquet

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/posecoach/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []schema.BatchResult {
	return []schema.BatchResult{
		{
			CapturePath: "session/rep-001.json",
			FrameWidth:  640,
			FrameHeight: 480,
			Result: schema.PoseScoreResult{
				Score:        87,
				MatchedCount: 9,
				TotalCount:   9,
			},
		},
		{
			CapturePath: "session/rep-002.json",
			FrameWidth:  1920,
			FrameHeight: 1080,
			Result: schema.PoseScoreResult{
				Score:        54,
				MatchedCount: 7,
				TotalCount:   9,
				MissingParts: []schema.BodyPart{schema.LeftWrist, schema.RightWrist},
			},
		},
	}
}

// TestBuildFrameScores verifies the flattening, including the nullable
// missing-parts column.
func TestBuildFrameScores(t *testing.T) {
	scoredAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	records := BuildFrameScores(sampleResults(), schema.SideChest, scoredAt)

	require.Len(t, records, 2)

	assert.Equal(t, "session/rep-001.json", records[0].CapturePath)
	assert.Equal(t, "side-chest", records[0].TemplateID)
	assert.Equal(t, scoredAt, records[0].ScoredAt)
	assert.Equal(t, int32(87), records[0].Score)
	assert.Nil(t, records[0].MissingParts)

	require.NotNil(t, records[1].MissingParts)
	assert.Equal(t, "left_wrist,right_wrist", *records[1].MissingParts)
	assert.Equal(t, int32(7), records[1].MatchedCount)
	assert.Equal(t, int32(1920), records[1].FrameWidth)
}

// TestWriteReadRoundTrip verifies records survive a write/read cycle.
func TestWriteReadRoundTrip(t *testing.T) {
	scoredAt := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	records := BuildFrameScores(sampleResults(), schema.FrontDoubleBiceps, scoredAt)
	path := filepath.Join(t.TempDir(), "scores.parquet")

	require.NoError(t, WriteFrameScoresParquet(records, path))

	got, err := ReadFrameScoresParquet(path)
	require.NoError(t, err)
	require.Len(t, got, len(records))
	for i := range records {
		assert.Equal(t, records[i].CapturePath, got[i].CapturePath)
		assert.Equal(t, records[i].TemplateID, got[i].TemplateID)
		assert.Equal(t, records[i].Score, got[i].Score)
		assert.Equal(t, records[i].MatchedCount, got[i].MatchedCount)
		assert.Equal(t, records[i].TotalCount, got[i].TotalCount)
		assert.True(t, records[i].ScoredAt.Equal(got[i].ScoredAt))
		if records[i].MissingParts == nil {
			assert.Nil(t, got[i].MissingParts)
		} else {
			require.NotNil(t, got[i].MissingParts)
			assert.Equal(t, *records[i].MissingParts, *got[i].MissingParts)
		}
	}
}

// TestWriteEmptyBatch verifies an empty record set still produces a valid
// file.
func TestWriteEmptyBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.parquet")

	require.NoError(t, WriteFrameScoresParquet(nil, path))

	got, err := ReadFrameScoresParquet(path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestReadMissingFile verifies the open error is surfaced.
func TestReadMissingFile(t *testing.T) {
	_, err := ReadFrameScoresParquet(filepath.Join(t.TempDir(), "nope.parquet"))
	assert.Error(t, err)
}
