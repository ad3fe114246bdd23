package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rmacduff/awssearch/pkg/types"
)

const (
	listHeight = 8
	minWidth   = 60
	maxWidth   = 120

	colWidthID      = 21
	colWidthAccount = 14
	colWidthAZ      = 16
	// cursor(3) + ID(21) + sp(2) + Account(14) + sp(2) + AZ(16) + sp(2)
	fixedWidth = 3 + colWidthID + 2 + colWidthAccount + 2 + colWidthAZ + 2
)

// instanceModel is the bubbletea model for interactive instance selection.
type instanceModel struct {
	instances    []types.Instance
	filtered     []types.Instance
	cursor       int
	offset       int
	search       string
	selected     *types.Instance
	quitting     bool
	cancelled    bool
	termWidth    int
	contentWidth int
	colWidths    []int // [ID, Account, AZ, Name]
}

func newInstanceModel(instances []types.Instance) instanceModel {
	m := instanceModel{
		instances: instances,
		filtered:  instances,
		termWidth: 80,
	}
	m.calculateWidths()
	return m
}

func (m *instanceModel) calculateWidths() {
	m.contentWidth = m.termWidth - 2
	if m.contentWidth < minWidth {
		m.contentWidth = minWidth
	}
	if m.contentWidth > maxWidth {
		m.contentWidth = maxWidth
	}

	nameWidth := m.contentWidth - fixedWidth
	if nameWidth < 10 {
		nameWidth = 10
	}
	m.colWidths = []int{colWidthID, colWidthAccount, colWidthAZ, nameWidth}
}

// Init implements tea.Model.
func (m instanceModel) Init() tea.Cmd {
	return tea.WindowSize()
}

// Update implements tea.Model.
func (m instanceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.calculateWidths()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit

		case tea.KeyEnter:
			if len(m.filtered) > 0 {
				selected := m.filtered[m.cursor]
				m.selected = &selected
				m.quitting = true
				return m, tea.Quit
			}

		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}

		case tea.KeyDown:
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
				if m.cursor >= m.offset+listHeight {
					m.offset = m.cursor - listHeight + 1
				}
			}

		case tea.KeyBackspace:
			if len(m.search) > 0 {
				m.search = m.search[:len(m.search)-1]
				m.filterInstances()
			}

		case tea.KeyRunes:
			m.search += string(msg.Runes)
			m.filterInstances()
		}
	}

	return m, nil
}

func (m *instanceModel) filterInstances() {
	if m.search == "" {
		m.filtered = m.instances
	} else {
		query := strings.ToLower(m.search)
		m.filtered = nil
		for _, inst := range m.instances {
			if strings.Contains(strings.ToLower(inst.Name), query) ||
				strings.Contains(strings.ToLower(inst.ID), query) ||
				strings.Contains(strings.ToLower(inst.PrivateIP), query) ||
				strings.Contains(strings.ToLower(inst.Account), query) ||
				strings.Contains(strings.ToLower(inst.AZ), query) {
				m.filtered = append(m.filtered, inst)
			}
		}
	}
	if m.cursor >= len(m.filtered) {
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		} else {
			m.cursor = 0
		}
	}
	m.offset = 0
}

// View implements tea.Model.
func (m instanceModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	w := m.contentWidth

	blank := func() {
		sb.WriteString(BorderStyle.Render(vertical))
		sb.WriteString(strings.Repeat(" ", w))
		sb.WriteString(BorderStyle.Render(vertical))
		sb.WriteString("\n")
	}

	// Top border
	sb.WriteString(BorderStyle.Render(topLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(horizontal, w)))
	sb.WriteString(BorderStyle.Render(topRight))
	sb.WriteString("\n")

	// Search input
	sb.WriteString(BorderStyle.Render(vertical))
	sb.WriteString(NameStyle.Render(padRight(" > "+m.search, w)))
	sb.WriteString(BorderStyle.Render(vertical))
	sb.WriteString("\n")

	blank()

	// Instance list
	visibleEnd := m.offset + listHeight
	if visibleEnd > len(m.filtered) {
		visibleEnd = len(m.filtered)
	}
	for i := m.offset; i < visibleEnd; i++ {
		sb.WriteString(m.renderRow(i))
	}
	for i := visibleEnd; i < m.offset+listHeight; i++ {
		blank()
	}

	// Bottom border
	sb.WriteString(BorderStyle.Render(bottomLeft))
	sb.WriteString(BorderStyle.Render(strings.Repeat(horizontal, w)))
	sb.WriteString(BorderStyle.Render(bottomRight))
	sb.WriteString("\n")

	// Status bar
	sb.WriteString(HintStyle.Render(fmt.Sprintf(
		"  %d/%d instances  ·  ↑/↓ move  ·  enter select  ·  esc cancel",
		len(m.filtered), len(m.instances))))
	sb.WriteString("\n")

	return sb.String()
}

func (m instanceModel) renderRow(idx int) string {
	var sb strings.Builder
	inst := m.filtered[idx]
	w := m.contentWidth

	sb.WriteString(BorderStyle.Render(vertical))

	var line strings.Builder
	plainWidth := 0

	if idx == m.cursor {
		line.WriteString(" > ")
	} else {
		line.WriteString("   ")
	}
	plainWidth += 3

	line.WriteString(IDStyle.Render(padRight(inst.ID, m.colWidths[0])))
	line.WriteString("  ")
	plainWidth += m.colWidths[0] + 2

	line.WriteString(AccountStyle.Render(padRight(inst.Account, m.colWidths[1])))
	line.WriteString("  ")
	plainWidth += m.colWidths[1] + 2

	line.WriteString(CellStyle.Render(padRight(inst.AZ, m.colWidths[2])))
	line.WriteString("  ")
	plainWidth += m.colWidths[2] + 2

	line.WriteString(NameStyle.Render(padRight(inst.Name, m.colWidths[3])))
	plainWidth += m.colWidths[3]

	if plainWidth < w {
		line.WriteString(strings.Repeat(" ", w-plainWidth))
	}

	sb.WriteString(line.String())
	sb.WriteString(BorderStyle.Render(vertical))
	sb.WriteString("\n")
	return sb.String()
}

// SelectInstance shows an interactive picker over the given instances and
// returns the chosen one. A cancelled selection returns an error.
func SelectInstance(instances []types.Instance) (*types.Instance, error) {
	p := tea.NewProgram(newInstanceModel(instances))

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("selector failed: %w", err)
	}

	m, ok := final.(instanceModel)
	if !ok || m.cancelled || m.selected == nil {
		return nil, fmt.Errorf("selection cancelled")
	}

	return m.selected, nil
}
