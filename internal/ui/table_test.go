package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnWidthsTakeMaxOfHeaderAndCells(t *testing.T) {
	headers := []string{"Name", "Instance ID", "AZ"}
	rows := [][]string{
		{"prod-api-01-very-long-name", "i-0a", "us-east-1a"},
		{"web", "i-0b", "eu"},
	}

	widths := columnWidths(headers, rows)

	assert.Equal(t, []int{
		len("prod-api-01-very-long-name"), // widest cell wins
		len("Instance ID"),                // header wins
		len("us-east-1a"),
	}, widths)
}

func TestColumnWidthsHeadersOnly(t *testing.T) {
	widths := columnWidths([]string{"Name", "DNS Name"}, nil)

	assert.Equal(t, []int{len("Name"), len("DNS Name")}, widths)
}

func tableLines(out string) []string {
	return strings.Split(strings.TrimRight(out, "\n"), "\n")
}

func TestRenderTableLineCount(t *testing.T) {
	headers := []string{"Name", "Account"}
	rows := [][]string{
		{"prod-api-01", "myprod"},
		{"staging-web", "mystaging"},
	}

	out := RenderTable(headers, rows, nil)

	// top border, header, separator, one line per row, bottom border
	assert.Len(t, tableLines(out), len(rows)+4)
}

func TestRenderTableEmptyRowsStillRendersHeaders(t *testing.T) {
	out := RenderTable([]string{"Name", "DNS Name", "Account"}, nil, nil)

	lines := tableLines(out)
	assert.Len(t, lines, 4)
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "DNS Name")
	assert.Contains(t, out, "Account")
}

func TestRenderTablePreservesRowOrder(t *testing.T) {
	rows := [][]string{{"zeta"}, {"alpha"}, {"mike"}}

	out := RenderTable([]string{"Name"}, rows, nil)

	assert.Less(t, strings.Index(out, "zeta"), strings.Index(out, "alpha"))
	assert.Less(t, strings.Index(out, "alpha"), strings.Index(out, "mike"))
}

func TestRenderTableDoesNotTruncateCells(t *testing.T) {
	long := strings.Repeat("x", 200)

	out := RenderTable([]string{"Name"}, [][]string{{long}}, nil)

	assert.Contains(t, out, long)
}
