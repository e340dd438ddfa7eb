// Package markdown renders a csv.Table as a pipe-delimited Markdown table.
package markdown

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dev-shimada/csv2md/internal/csv"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// Rule is the cell content of the row separating the header from the data.
const Rule = "---"

type Renderer interface {
	Render(w io.Writer, t *csv.Table) error
}

// FormatRow joins fields into a single Markdown table row: "| a | b |".
func FormatRow(fields []string) string {
	return "| " + strings.Join(fields, " | ") + " |"
}

// RuleRow returns ncol cells of Rule.
func RuleRow(ncol int) []string {
	cells := make([]string, ncol)
	for i := range cells {
		cells[i] = Rule
	}
	return cells
}

// Lines returns the header, the rule row and then every body row, formatted.
func Lines(t *csv.Table) []string {
	lines := make([]string, 0, len(t.Body)+2)
	lines = append(lines, FormatRow(t.Header), FormatRow(RuleRow(t.NumColumns())))
	for _, row := range t.Body {
		lines = append(lines, FormatRow(row))
	}
	return lines
}

// Plain writes rows exactly as FormatRow produces them, without padding.
type Plain struct{}

func (Plain) Render(w io.Writer, t *csv.Table) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(t) {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Aligned pads cells so the pipes of every row line up. The table is as wide
// as its widest row; missing cells, header included, are left blank. The rule
// row is plain dashes and cells are left aligned.
type Aligned struct{}

func (Aligned) Render(w io.Writer, t *csv.Table) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithHeaderAlignment(tw.AlignNone),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)
	table.Header([]string(t.Header))
	for _, row := range t.Body {
		if err := table.Append([]string(row)); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	return table.Render()
}

// New returns Aligned when aligned is set and Plain otherwise.
func New(aligned bool) Renderer {
	if aligned {
		return Aligned{}
	}
	return Plain{}
}
