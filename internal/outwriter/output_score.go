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

// scoreReport is the JSON/CSV shape for one scoring run.
type scoreReport struct {
	Template schema.TemplateID      `json:"template"`
	Result   schema.PoseScoreResult `json:"result"`
	Feedback []string               `json:"feedback"`
}

// writeScoreResult outputs one scoring result, dispatching on the
// configured output format.
func writeScoreResult(result schema.PoseScoreResult, feedback []string, tpl *schema.PoseTemplate, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, scoreReport{Template: tpl.ID, Result: result, Feedback: feedback})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreCSV(w, result, tpl)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(result, feedback, tpl, cfg, duration, w)
		}, "Wrote table")
	}
}

// writeScoreTable renders the per-part breakdown plus the coaching feedback.
func writeScoreTable(result schema.PoseScoreResult, feedback []string, tpl *schema.PoseTemplate, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	missing := make(map[schema.BodyPart]struct{}, len(result.MissingParts))
	for _, part := range result.MissingParts {
		missing[part] = struct{}{}
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Part", "Weight", "Status"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	fmtFloat := createFormatters(cfg.Precision)
	var data [][]string
	for _, part := range tpl.Parts {
		status := "matched"
		if _, ok := missing[part]; ok {
			status = "missing"
		}
		data = append(data, []string{
			schema.DisplayName(part),
			fmtFloat(schema.PartWeight(part)),
			status,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	label := contract.GetPlainLabel(result.Score)
	if cfg.UseColors {
		label = contract.GetColorLabel(result.Score)
	}
	if _, err := fmt.Fprintf(writer, "%s: %d/100 (%s), matched %d of %d parts\n",
		tpl.Name, result.Score, label, result.MatchedCount, result.TotalCount); err != nil {
		return err
	}
	for _, msg := range feedback {
		if _, err := fmt.Fprintf(writer, "  - %s\n", msg); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(writer, "Scored in %v\n", duration)
	return err
}

func writeScoreCSV(w io.Writer, result schema.PoseScoreResult, tpl *schema.PoseTemplate) error {
	header := []string{"template", "score", "label", "matched_count", "total_count", "missing_parts"}
	rows := [][]string{{
		string(tpl.ID),
		strconv.Itoa(result.Score),
		contract.GetPlainLabel(result.Score),
		strconv.Itoa(result.MatchedCount),
		strconv.Itoa(result.TotalCount),
		joinParts(result.MissingParts),
	}}
	return writeCSVWithHeader(w, header, rows)
}

func joinParts(parts []schema.BodyPart) string {
	out := ""
	for i, part := range parts {
		if i > 0 {
			out += ";"
		}
		out += string(part)
	}
	return out
}
