package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/shellkit/histclean/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const (
	reportFormatTable = "table"
	reportFormatYAML  = "yaml"
	reportFormatNone  = "none"
)

func validateReportFormat(format string) error {
	switch format {
	case reportFormatTable, reportFormatYAML, reportFormatNone:
		return nil
	}
	return fmt.Errorf("unknown report format %q (expected table, yaml, or none)", format)
}

// renderReport writes the run summary to w in the requested format.
func renderReport(w io.Writer, report ports.CleanReport, format string) error {
	switch format {
	case reportFormatNone:
		return nil
	case reportFormatYAML:
		out, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("could not render YAML report: %w", err)
		}
		_, err = w.Write(out)
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := [][]string{
		{"Parsed units", strconv.Itoa(report.ParsedUnits)},
		{"Parse errors", strconv.Itoa(report.ParseErrors)},
		{"Ignored", strconv.Itoa(report.Ignored)},
		{"Retained", strconv.Itoa(report.Retained)},
		{"Unique kept", strconv.Itoa(report.Unique)},
	}
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
	return nil
}
