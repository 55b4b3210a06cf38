package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/guestcard/pkg/layout"
	"github.com/matzehuels/guestcard/pkg/rows"
)

// planTable renders the elements of a plan in paint order, hidden
// elements last and struck through.
func planTable(p layout.Plan) string {
	elements := p.PaintOrder()
	for _, el := range p.Elements {
		if !el.Visible {
			elements = append(elements, el)
		}
	}

	data := make([][]string, 0, len(elements))
	for _, el := range elements {
		label := el.Text
		if label == "" {
			label = el.Icon
		}
		data = append(data, []string{
			string(el.Kind),
			strconv.Itoa(el.Z),
			formatCoord(el.X),
			formatCoord(el.Y),
			label,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Element", "Z", "X", "Y", "Content").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			if row < len(elements) && !elements[row].Visible {
				return styleHidden.Padding(0, 1)
			}
			if col == 2 || col == 3 {
				return base.Foreground(colorCyan).Align(lipgloss.Right)
			}
			return base
		}).
		Render()
}

// planSummary is the one-line header above a plan table.
func planSummary(id string, p layout.Plan) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(id))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  layer %s · rule %s · scale %.3f/%.3f",
		p.Layer, p.Rows.Rule, p.Scale.Raw, p.Scale.Normalized)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("container (%s, %s) width %s",
		formatCoord(p.Container.X), formatCoord(p.Container.Y), formatCoord(p.Container.Width))))
	if p.Container.Absolute {
		b.WriteString(StyleWarning.Render("  absolute"))
	}
	return b.String()
}

// matrixTable renders the row selection matrix.
func matrixTable(m []rows.MatrixRow) string {
	data := make([][]string, 0, len(m))
	for _, r := range m {
		data = append(data, []string{
			r.Category.String(),
			yesNo(r.Priority),
			yesNo(r.Notes),
			string(r.Completeness),
			r.Set.Time.String(),
			r.Set.GuestCount.String(),
			r.Set.Rule.String(),
		})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Category", "Priority", "Notes", "Record", "Time", "Count", "Rule").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if (col == 4 || col == 5) && data[row][col] == rows.Hidden.String() {
				return base.Foreground(colorDim)
			}
			return base
		}).
		Render()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
