package sim

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mondrian-wm/mondrian/internal/pool"
)

var (
	windowStyle = lipgloss.NewStyle().
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Foreground(lipgloss.Color("7"))

	hoveredStyle = windowStyle.
			BorderForeground(lipgloss.Color("12")).
			Foreground(lipgloss.Color("15"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Background(lipgloss.Color("0"))

	logsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("11")).
			Foreground(lipgloss.Color("7")).
			Padding(0, 1)
)

// View renders the demo desktop: one layer per window at its drawn
// geometry, plus the status bar on the bottom row.
func (m *Model) View() tea.View {
	var view tea.View

	view.SetContent(m.renderContent())
	view.AltScreen = true
	view.MouseMode = tea.MouseModeAllMotion

	return view
}

// renderContent composes the full frame.
func (m *Model) renderContent() string {
	canvas := lipgloss.NewCanvas(max(m.width, 1), max(m.height, 1))

	layersPtr := pool.GetLayerSlice()
	layers := (*layersPtr)[:0]
	defer pool.PutLayerSlice(layersPtr)

	px, py := m.desk.Pointer()
	hovered := m.desk.WindowAt(px, py)

	for z, w := range m.desk.SimWindows() {
		if w.Minimized() {
			continue
		}

		r := w.VisualRect()
		if r.Width < 2 || r.Height < 2 {
			continue
		}

		style := windowStyle
		if w == hovered {
			style = hoveredStyle
		}

		// Border takes one cell on each side.
		box := style.
			Width(r.Width - 2).
			Height(r.Height - 2).
			Render(w.Title())

		layers = append(layers, lipgloss.NewLayer(box).X(r.X).Y(r.Y).Z(z).ID(w.ID()))
	}

	layers = append(layers, m.statusLayer())
	if m.showLogs {
		layers = append(layers, m.logsLayer())
	}

	canvas.Compose(lipgloss.NewCompositor(layers...))

	return lipgloss.Sprint(canvas.Render())
}

// statusLayer renders the bottom status bar.
func (m *Model) statusLayer() *lipgloss.Layer {
	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)

	pair := m.router.ActivePair()
	fmt.Fprintf(sb, " [%d/%d] ", pair.Workspace, m.desk.Workspaces())
	fmt.Fprintf(sb, "windows:%d ", len(m.desk.SimWindows()))
	fmt.Fprintf(sb, "gap:%d ", m.store.Spacing())

	right := m.sysinfo.CPUGraph() + " " + m.sysinfo.RAMLabel() + " "

	gap := m.width - lipgloss.Width(sb.String()) - lipgloss.Width(right)
	if gap > 0 {
		sb.WriteString(strings.Repeat(" ", gap))
	}
	sb.WriteString(right)

	bar := statusStyle.Width(max(m.width, 0)).Render(sb.String())
	return lipgloss.NewLayer(bar).X(0).Y(max(m.height-1, 0)).Z(1 << 16).ID("statusbar")
}

// logsLayer renders the event log overlay in the top-left corner, showing
// as many of the newest lines as fit above the status bar.
func (m *Model) logsLayer() *lipgloss.Layer {
	// Border and status bar take four rows.
	visible := max(m.height-4, 1)
	lines := m.logs.Tail(visible)

	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)

	sb.WriteString("event log")
	for _, line := range lines {
		sb.WriteString("\n")
		sb.WriteString(line)
	}

	box := logsStyle.Render(sb.String())
	return lipgloss.NewLayer(box).X(0).Y(0).Z(1<<16 + 1).ID("logs")
}
