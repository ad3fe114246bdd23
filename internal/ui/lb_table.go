package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rmacduff/awssearch/pkg/types"
)

// PrintClassicLBTable prints classic load balancers in a boxed table.
// Verbose adds the created time column.
func PrintClassicLBTable(lbs []types.ClassicLB, verbose bool) {
	headers := []string{"Name", "DNS Name", "Instances", "Account"}
	styles := []lipgloss.Style{NameStyle, CellStyle, IDStyle, AccountStyle}
	if verbose {
		headers = []string{"Name", "DNS Name", "Instances", "Created Time", "Account"}
		styles = []lipgloss.Style{NameStyle, CellStyle, IDStyle, CellStyle, AccountStyle}
	}

	rows := make([][]string, 0, len(lbs))
	for _, lb := range lbs {
		if verbose {
			rows = append(rows, []string{
				lb.Name,
				lb.DNSName,
				lb.InstanceString(),
				lb.CreatedAt.Format(timeFormat),
				lb.Account,
			})
			continue
		}
		rows = append(rows, []string{
			lb.Name,
			lb.DNSName,
			lb.InstanceString(),
			lb.Account,
		})
	}

	fmt.Print(RenderTable(headers, rows, styles))
	fmt.Printf("  %d load balancers\n", len(lbs))
}

// PrintLBTable prints ALB/NLB load balancers in a boxed table. Verbose adds
// the state and created time columns.
func PrintLBTable(lbs []types.LoadBalancer, verbose bool) {
	headers := []string{"Name", "DNS Name", "Type", "Scheme", "Account"}
	styles := []lipgloss.Style{NameStyle, CellStyle, CellStyle, CellStyle, AccountStyle}
	if verbose {
		headers = []string{"Name", "DNS Name", "Type", "Scheme", "State", "AZs", "Created Time", "Account"}
		styles = []lipgloss.Style{NameStyle, CellStyle, CellStyle, CellStyle, CellStyle, CellStyle, CellStyle, AccountStyle}
	}

	rows := make([][]string, 0, len(lbs))
	for _, lb := range lbs {
		if verbose {
			rows = append(rows, []string{
				lb.Name,
				lb.DNSName,
				lb.Type,
				lb.Scheme,
				lb.State,
				strings.Join(lb.AZs, ", "),
				lb.CreatedAt.Format(timeFormat),
				lb.Account,
			})
			continue
		}
		rows = append(rows, []string{
			lb.Name,
			lb.DNSName,
			lb.Type,
			lb.Scheme,
			lb.Account,
		})
	}

	fmt.Print(RenderTable(headers, rows, styles))
	fmt.Printf("  %d load balancers\n", len(lbs))
}
