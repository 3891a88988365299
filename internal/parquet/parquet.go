// Package parquet provides data structures and functions for exporting
// batch scoring results to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/huangsam/posecoach/schema"
	"github.com/parquet-go/parquet-go"
)

// FrameScore represents the scored outcome for one capture file in a batch
// run, flattened for columnar storage.
type FrameScore struct {
	// CapturePath is the path of the scored capture file
	CapturePath string `parquet:"capture_path,snappy"`

	// TemplateID is the catalog template the capture was scored against
	TemplateID string `parquet:"template_id,snappy"`

	// ScoredAt is when the batch run scored this capture
	ScoredAt time.Time `parquet:"scored_at,snappy"`

	// Score is the weighted similarity score in [0,100]
	Score int32 `parquet:"score,snappy"`

	// MatchedCount is the number of template parts found in the frame
	MatchedCount int32 `parquet:"matched_count,snappy"`

	// TotalCount is the number of parts the template defines
	TotalCount int32 `parquet:"total_count,snappy"`

	// MissingParts is a comma-joined list of undetected parts (nullable)
	MissingParts *string `parquet:"missing_parts,optional,snappy"`

	// FrameWidth and FrameHeight are the source image dimensions
	FrameWidth  int32 `parquet:"frame_width,snappy"`
	FrameHeight int32 `parquet:"frame_height,snappy"`
}

// BuildFrameScores flattens batch results into parquet records.
func BuildFrameScores(results []schema.BatchResult, templateID schema.TemplateID, scoredAt time.Time) []FrameScore {
	records := make([]FrameScore, 0, len(results))
	for _, res := range results {
		rec := FrameScore{
			CapturePath:  res.CapturePath,
			TemplateID:   string(templateID),
			ScoredAt:     scoredAt,
			Score:        int32(res.Result.Score),
			MatchedCount: int32(res.Result.MatchedCount),
			TotalCount:   int32(res.Result.TotalCount),
			FrameWidth:   int32(res.FrameWidth),
			FrameHeight:  int32(res.FrameHeight),
		}
		if len(res.Result.MissingParts) > 0 {
			names := make([]string, len(res.Result.MissingParts))
			for i, part := range res.Result.MissingParts {
				names[i] = string(part)
			}
			joined := strings.Join(names, ",")
			rec.MissingParts = &joined
		}
		records = append(records, rec)
	}
	return records
}

// WriteFrameScoresParquet writes a slice of FrameScore structs to a
// Parquet file. The schema is inferred from the struct tags.
func WriteFrameScoresParquet(data []FrameScore, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[FrameScore](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// ReadFrameScoresParquet reads FrameScore records back from a Parquet
// file, used by tests and spot checks of exported batches.
func ReadFrameScoresParquet(inputPath string) ([]FrameScore, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[FrameScore](file)
	defer func() { _ = reader.Close() }()

	records := make([]FrameScore, reader.NumRows())
	if len(records) == 0 {
		return records, nil
	}
	if _, err := reader.Read(records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read parquet records: %w", err)
	}
	return records, nil
}
