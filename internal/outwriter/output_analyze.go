package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/posecoach/internal/contract"
	"github.com/huangsam/posecoach/schema"
)

// writeAnalysisResult outputs rule-based feedback items, dispatching on the
// configured output format. Items keep their generation order.
func writeAnalysisResult(items []schema.FeedbackItem, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, items)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"severity", "part", "message"}
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				rows = append(rows, []string{string(item.Severity), string(item.Part), item.Message})
			}
			return writeCSVWithHeader(w, header, rows)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAnalysisText(items, cfg, duration, w)
		}, "Wrote feedback")
	}
}

func writeAnalysisText(items []schema.FeedbackItem, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	for _, item := range items {
		label := contract.GetSeverityLabel(item.Severity, cfg.UseColors)
		if item.Part != "" {
			if _, err := fmt.Fprintf(writer, "[%s] %s (%s)\n", label, item.Message, schema.DisplayName(item.Part)); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(writer, "[%s] %s\n", label, item.Message); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(writer, "Analyzed in %v\n", duration)
	return err
}
