package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rmacduff/awssearch/pkg/types"
)

const timeFormat = "2006-01-02 15:04:05"

// PrintInstanceTable prints EC2 instances in a boxed table. Verbose adds the
// type, state and launch time columns.
func PrintInstanceTable(instances []types.Instance, verbose bool) {
	headers := []string{"Name", "Instance ID", "Placement", "Private IP", "Public IP", "Tags", "Account"}
	styles := []lipgloss.Style{NameStyle, IDStyle, CellStyle, CellStyle, CellStyle, AccountStyle, AccountStyle}
	if verbose {
		headers = []string{"Name", "Instance ID", "Type", "State", "Placement", "Private IP", "Public IP", "Tags", "Launch Time", "Account"}
		styles = []lipgloss.Style{NameStyle, IDStyle, CellStyle, CellStyle, CellStyle, CellStyle, CellStyle, AccountStyle, CellStyle, AccountStyle}
	}

	rows := make([][]string, 0, len(instances))
	for _, inst := range instances {
		if verbose {
			rows = append(rows, []string{
				inst.Name,
				inst.ID,
				inst.Type,
				inst.State,
				inst.AZ,
				ipCell(inst.PrivateIP),
				ipCell(inst.PublicIP),
				inst.TagString(),
				inst.LaunchTime.Format(timeFormat),
				inst.Account,
			})
			continue
		}
		rows = append(rows, []string{
			inst.Name,
			inst.ID,
			inst.AZ,
			ipCell(inst.PrivateIP),
			ipCell(inst.PublicIP),
			inst.TagString(),
			inst.Account,
		})
	}

	fmt.Print(RenderTable(headers, rows, styles))
	fmt.Printf("  %d instances\n", len(instances))
}

// PrintInstanceDetails prints the full record of one instance.
func PrintInstanceDetails(inst *types.Instance) {
	fmt.Println()
	fmt.Println(HeaderStyle.Render("Instance Details"))
	fmt.Println(MutedStyle.Render("───────────────────────────────"))
	fmt.Printf("  ID:         %s\n", IDStyle.Render(inst.ID))
	fmt.Printf("  Name:       %s\n", NameStyle.Render(inst.Name))
	fmt.Printf("  State:      %s\n", inst.State)
	fmt.Printf("  Type:       %s\n", inst.Type)
	fmt.Printf("  Placement:  %s\n", inst.AZ)
	fmt.Printf("  Private IP: %s\n", ipCell(inst.PrivateIP))
	if inst.PublicIP != "" {
		fmt.Printf("  Public IP:  %s\n", inst.PublicIP)
	}
	fmt.Printf("  Launched:   %s\n", inst.LaunchTime.Format(timeFormat))
	fmt.Printf("  Account:    %s\n", AccountStyle.Render(inst.Account))

	if inst.TagString() != "" {
		fmt.Println()
		fmt.Println(MutedStyle.Render("  Tags:"))
		for k, v := range inst.Tags {
			if k != "Name" {
				fmt.Printf("    %s: %s\n", k, v)
			}
		}
	}
}

// ipCell renders an IP address cell, substituting n/a when absent.
func ipCell(ip string) string {
	if ip == "" {
		return "n/a"
	}
	return ip
}
