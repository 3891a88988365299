package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/posecoach/internal/contract"
	"github.com/huangsam/posecoach/internal/parquet"
	"github.com/huangsam/posecoach/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeBatchResults outputs scored results for a batch of captures.
// Parquet needs a real file path because the columnar writer seeks.
func writeBatchResults(results []schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchCSV(w, results)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		records := parquet.BuildFrameScores(results, cfg.TemplateID, time.Now())
		if err := parquet.WriteFrameScoresParquet(records, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("💾 Wrote %d parquet records to %s\n", len(records), cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(results, cfg, duration, w)
		}, "Wrote table")
	}
}

func writeBatchCSV(w io.Writer, results []schema.BatchResult) error {
	header := []string{"capture", "score", "label", "matched_count", "total_count", "missing_parts"}
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		rows = append(rows, []string{
			res.CapturePath,
			strconv.Itoa(res.Result.Score),
			contract.GetPlainLabel(res.Result.Score),
			strconv.Itoa(res.Result.MatchedCount),
			strconv.Itoa(res.Result.TotalCount),
			joinParts(res.Result.MissingParts),
		})
	}
	return writeCSVWithHeader(w, header, rows)
}

func writeBatchTable(results []schema.BatchResult, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Capture", "Score", "Label", "Matched"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	pathWidth := getTerminalWidth(cfg) - 45
	if pathWidth < 15 {
		pathWidth = 15
	}

	var data [][]string
	for i, res := range results {
		label := contract.GetPlainLabel(res.Result.Score)
		if cfg.UseColors {
			label = contract.GetColorLabel(res.Result.Score)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncate(res.CapturePath, pathWidth),
			strconv.Itoa(res.Result.Score),
			label,
			fmt.Sprintf("%d/%d", res.Result.MatchedCount, res.Result.TotalCount),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	var total int
	for _, res := range results {
		total += res.Result.Score
	}
	avg := 0
	if len(results) > 0 {
		avg = total / len(results)
	}
	_, err := fmt.Fprintf(writer, "Scored %d captures in %v (average score: %d)\n", len(results), duration, avg)
	return err
}
