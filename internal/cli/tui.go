package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/casegen/pkg/gen"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

const (
	// maxPreviewColumns caps how many fields are shown side by side.
	maxPreviewColumns = 4
	// maxPreviewWidth truncates long values in the table.
	maxPreviewWidth = 28
)

// =============================================================================
// RecordListModel - Interactive record selection
// =============================================================================

// RecordListModel is the bubbletea model for paging through generated records.
type RecordListModel struct {
	Records  []*gen.Record
	Fields   []string
	Cursor   int
	Selected *gen.Record
	Height   int
	Offset   int
}

// NewRecordListModel creates a list over records whose columns are fields.
func NewRecordListModel(records []*gen.Record, fields []string) RecordListModel {
	return RecordListModel{
		Records: records,
		Fields:  fields,
		Height:  15,
	}
}

func (m RecordListModel) Init() tea.Cmd {
	return nil
}

func (m RecordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Records)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n := len(m.Records); n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		case "enter":
			if len(m.Records) == 0 {
				return m, nil
			}
			m.Selected = m.Records[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m RecordListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Generated Records"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ print  q quit"))
	b.WriteString("\n\n")

	columns := m.Fields
	if len(columns) > maxPreviewColumns {
		columns = columns[:maxPreviewColumns]
	}

	end := min(m.Offset+m.Height, len(m.Records))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		row := []string{cursor, fmt.Sprintf("%d", i+1)}
		for _, f := range columns {
			v, _ := m.Records[i].Get(f)
			row = append(row, preview(v))
		}
		rows = append(rows, row)
	}

	headers := append([]string{"", "#"}, columns...)
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 1 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	status := fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Records))
	if hidden := len(m.Fields) - len(columns); hidden > 0 {
		status += fmt.Sprintf("  +%d more fields", hidden)
	}
	b.WriteString(listDimStyle.Render(status))

	return b.String()
}

// preview renders a value as compact JSON cut to maxPreviewWidth runes.
func preview(v any) string {
	if v == nil {
		return "-"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "?"
	}
	s := []rune(string(data))
	if len(s) > maxPreviewWidth {
		return string(s[:maxPreviewWidth-1]) + "…"
	}
	return string(s)
}
