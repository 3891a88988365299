package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/posecoach/internal/contract"
	"github.com/huangsam/posecoach/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// writeTemplateCatalog outputs the reference pose catalog.
func writeTemplateCatalog(templates []*schema.PoseTemplate, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, templates)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"id", "name", "parts", "full_body", "description"}
			rows := make([][]string, 0, len(templates))
			for _, tpl := range templates {
				rows = append(rows, []string{
					string(tpl.ID),
					tpl.Name,
					strconv.Itoa(len(tpl.Parts)),
					strconv.FormatBool(schema.IsFullBody(tpl.ID)),
					tpl.Description,
				})
			}
			return writeCSVWithHeader(w, header, rows)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTemplateTable(templates, w)
		}, "Wrote table")
	}
}

func writeTemplateTable(templates []*schema.PoseTemplate, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"ID", "Name", "Parts", "Full Body", "Description"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignLeft
	})

	var data [][]string
	for _, tpl := range templates {
		data = append(data, []string{
			string(tpl.ID),
			tpl.Name,
			strconv.Itoa(len(tpl.Parts)),
			strconv.FormatBool(schema.IsFullBody(tpl.ID)),
			tpl.Description,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "%d reference poses available\n", len(templates))
	return err
}
