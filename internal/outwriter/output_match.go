package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/posecoach/internal/contract"
	"github.com/huangsam/posecoach/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeMatchResults outputs the ranked template scores for one frame.
func writeMatchResults(matches []schema.TemplateScore, cfg *contract.Config, duration time.Duration) error {
	if len(matches) > cfg.ResultLimit {
		matches = matches[:cfg.ResultLimit]
	}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, matches)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"rank", "template", "score", "label", "matched_count", "total_count"}
			rows := make([][]string, 0, len(matches))
			for i, m := range matches {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					string(m.Template.ID),
					strconv.Itoa(m.Result.Score),
					contract.GetPlainLabel(m.Result.Score),
					strconv.Itoa(m.Result.MatchedCount),
					strconv.Itoa(m.Result.TotalCount),
				})
			}
			return writeCSVWithHeader(w, header, rows)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatchTable(matches, cfg, duration, w)
		}, "Wrote table")
	}
}

func writeMatchTable(matches []schema.TemplateScore, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Template", "Score", "Label", "Matched"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, m := range matches {
		label := contract.GetPlainLabel(m.Result.Score)
		if cfg.UseColors {
			label = contract.GetColorLabel(m.Result.Score)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			m.Template.Name,
			strconv.Itoa(m.Result.Score),
			label,
			fmt.Sprintf("%d/%d", m.Result.MatchedCount, m.Result.TotalCount),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Ranked %d templates in %v\n", len(matches), duration)
	return err
}
