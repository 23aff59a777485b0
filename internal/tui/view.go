package tui

import (
	"fmt"
	"strings"

	"github.com/sixworlds/exosky/internal/cli/formatter"
)

// chromeLines is the number of view lines that are not planet rows.
const chromeLines = 12

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, formatter.StyleRed.Render("✖ "+m.err.Error()))
	}
	if m.loading {
		sections = append(sections, m.spinner.View()+" "+formatter.Dim("Loading planet catalog…"))
	}

	if len(m.options) > 0 {
		sections = append(sections, m.renderOptions())
	} else if !m.loading {
		sections = append(sections, formatter.Dim("No planets in catalog."))
	}

	if m.scene.Planet != "" {
		sections = append(sections, m.renderSkyBox())
	}
	if m.dragHint {
		sections = append(sections, formatter.Dim("←/→ drag to look around the sky, u/d to look up or down"))
	}
	if m.notice != "" {
		if m.failed {
			sections = append(sections, formatter.StyleRed.Render(m.notice))
		} else {
			sections = append(sections, formatter.StyleGreen.Render(m.notice))
		}
	}

	sections = append(sections, m.renderStatusBar())
	return strings.Join(sections, "\n")
}

func (m *Model) renderHeader() string {
	header := formatter.StylePurple.Render("exosky")
	if m.selected != "" {
		header += " " + formatter.Dim("›") + " " + formatter.Bold(m.selected)
	}
	return header + "\n" + formatter.Dim(strings.Repeat("─", max(m.width, 20)))
}

func (m *Model) renderOptions() string {
	start, end := visibleRange(m.cursor, len(m.options), m.height-chromeLines)

	var b strings.Builder
	for i := start; i < end; i++ {
		o := m.options[i]
		prefix := "  "
		if i == m.cursor {
			prefix = formatter.StyleYellow.Render("› ")
		}
		label := o.label
		if o.value == m.selected {
			label = formatter.StyleGreen.Render("● " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(prefix + label)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end-start < len(m.options) {
		b.WriteString("\n" + formatter.Dim(fmt.Sprintf("%d/%d", m.cursor+1, len(m.options))))
	}
	return b.String()
}

func (m *Model) renderSkyBox() string {
	face := m.CurrentFace()
	url := ""
	for _, t := range m.scene.Textures {
		if t.Face == face {
			url = t.URL
			break
		}
	}
	return formatter.FaceStyle(face).Render("["+face.String()+"]") + " " + formatter.Dim(url)
}

func (m *Model) renderStatusBar() string {
	var hints []string
	if m.dragHint {
		for _, b := range m.keys.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	} else {
		hints = append(hints, formatter.Dim(m.keys.Quit.Help().Key+": "+m.keys.Quit.Help().Desc))
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// visibleRange returns the window of rows to draw so cursor stays in view.
// rows <= 0 means no limit.
func visibleRange(cursor, n, rows int) (start, end int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start = cursor - rows/2
	start = max(0, min(start, n-rows))
	return start, start + rows
}
