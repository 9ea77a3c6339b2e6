package poe

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// OutputFormat selects how a report is printed
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatCSV   OutputFormat = "csv"
)

// ParseOutputFormat validates a --format value
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatCSV:
		return f, nil
	case "":
		return OutputFormatTable, nil
	default:
		return "", fmt.Errorf("invalid format: %s. Use: table, json, or csv", s)
	}
}

// simpleStyle reproduces the classic "simple" layout: no borders, two spaces
// between columns and a dashed rule under the header.
var simpleStyle = func() table.Style {
	s := table.StyleDefault
	s.Name = "PoESimple"
	s.Box.MiddleHorizontal = "-"
	s.Box.MiddleSeparator = "  "
	s.Box.MiddleVertical = "  "
	s.Box.PaddingLeft = ""
	s.Box.PaddingRight = ""
	s.Format.Header = text.FormatDefault
	s.Options.DrawBorder = false
	s.Options.SeparateColumns = true
	s.Options.SeparateHeader = true
	s.Options.SeparateRows = false
	s.Options.SeparateFooter = false
	return s
}()

// plainStyle is simpleStyle without the header rule, used for group cells.
var plainStyle = func() table.Style {
	s := simpleStyle
	s.Name = "PoEPlain"
	s.Options.SeparateHeader = false
	return s
}()

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// renderPlain aligns rows without header or borders.
func renderPlain(rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(plainStyle)
	for _, r := range rows {
		tw.AppendRow(toRow(r))
	}
	return trimLines(tw.Render())
}

// Render writes the table to w in the requested format
func (t *Table) Render(w io.Writer, format OutputFormat) error {
	switch format {
	case OutputFormatJSON:
		return t.renderJSON(w)
	case OutputFormatCSV:
		tw := t.writer()
		_, err := fmt.Fprintln(w, tw.RenderCSV())
		return err
	default:
		tw := t.writer()
		_, err := fmt.Fprintln(w, trimLines(tw.Render()))
		return err
	}
}

func (t *Table) writer() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(simpleStyle)
	tw.AppendHeader(toRow(t.Header()))
	for _, r := range t.Body() {
		tw.AppendRow(toRow(r))
	}
	return tw
}

func (t *Table) renderJSON(w io.Writer) error {
	header := t.Header()
	output := make([]map[string]string, 0, len(t.Rows))
	for _, r := range t.Body() {
		entry := make(map[string]string, len(header))
		for i, h := range header {
			entry[h] = r[i]
		}
		output = append(output, entry)
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal table: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
