package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderFormatTable lays out extension/description/common rows in the rounded
// style the info command uses.
func renderFormatTable(rows [][3]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Extension", "Description", "Common"})
	for _, row := range rows {
		tw.AppendRow(table.Row{row[0], row[1], row[2]})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AlignHeader: text.AlignLeft},
		{Number: 2, AlignHeader: text.AlignLeft},
		{Number: 3, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
