// Teademo renders a virtualized, sectioned contact list in the terminal.
// One terminal row stands in for one pixel, so row heights are 1 and the
// controller's window math maps directly onto screen lines.
//
//	go run ./cmd/teademo/
//
// Scroll with the arrow keys or PgUp/PgDn; press a letter to jump to that
// section; q quits.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-theft-auto/listview"
)

const tickInterval = 33 * time.Millisecond

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	altStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// terminalViewport is the shared scroll state between the model and the
// controller. The controller holds it as its Host and teleports it during
// section jumps; the model moves it on key input.
type terminalViewport struct {
	scrollY  float32
	height   float32
	contentH float32
}

func (v *terminalViewport) SetScrollOffset(y float32) {
	v.scrollY = v.clamp(y)
}

func (v *terminalViewport) clamp(y float32) float32 {
	max := v.contentH - v.height
	if max < 0 {
		max = 0
	}
	if y < 0 {
		return 0
	}
	if y > max {
		return max
	}
	return y
}

type model struct {
	ctrl     *listview.Controller[string]
	vp       *terminalViewport
	width    int
	lastTick time.Time
	status   string
}

func newModel() (model, error) {
	vp := &terminalViewport{height: 24}

	geom := listview.NewGeometry[string](listview.WithRowHeights(1, 1))
	ctrl, err := listview.NewController(geom, vp,
		listview.WithInitialRendered(30),
		listview.WithMaxRendered(80),
		listview.WithRenderAhead(20),
		listview.WithRenderBehind(8),
		listview.WithPageSize(10),
	)
	if err != nil {
		return model{}, err
	}

	data := make(map[string][]string)
	var order []string
	for s := 'A'; s <= 'Z'; s++ {
		id := string(s)
		names := make([]string, 24)
		for i := range names {
			names[i] = fmt.Sprintf("%s. Contact %02d", id, i+1)
		}
		data[id] = names
		order = append(order, id)
	}
	ctrl.SetData(data, order)
	vp.contentH = geom.TotalHeight()
	ctrl.OnContentSize(vp.contentH)

	return model{ctrl: ctrl, vp: vp, lastTick: time.Now()}, nil
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), tickCmd())
}

func (m model) scrollBy(dy float32) {
	m.vp.scrollY = m.vp.clamp(m.vp.scrollY + dy)
	m.ctrl.OnScroll(m.vp.scrollY, m.vp.height)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.vp.height = float32(msg.Height - 1) // bottom line is the status bar
		m.vp.scrollY = m.vp.clamp(m.vp.scrollY)
		m.ctrl.OnScroll(m.vp.scrollY, m.vp.height)
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		dt := float32(now.Sub(m.lastTick).Seconds())
		m.lastTick = now
		m.ctrl.Advance(dt)
		return m, tickCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.ctrl.Teardown()
			return m, tea.Quit
		case "up", "k":
			m.scrollBy(-1)
		case "down", "j":
			m.scrollBy(1)
		case "pgup":
			m.scrollBy(-m.vp.height)
		case "pgdown", " ":
			m.scrollBy(m.vp.height)
		case "home":
			m.scrollBy(-m.vp.contentH)
		case "end":
			m.scrollBy(m.vp.contentH)
		default:
			s := msg.String()
			if len(s) == 1 && s[0] >= 'a' && s[0] <= 'z' {
				id := strings.ToUpper(s)
				if err := m.ctrl.ScrollToSection(id); err != nil {
					m.status = err.Error()
				} else {
					m.status = "jumping to " + id
				}
			}
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	height := int(m.vp.height)
	if height <= 0 || m.width <= 0 {
		return ""
	}

	lines := make([]string, height)
	geom := m.ctrl.Geometry()
	plan := m.ctrl.Plan()

	place := func(rows []listview.RenderRow[string]) {
		for _, rr := range rows {
			line := int(geom.OffsetBeforeRow(rr.Index) - m.vp.scrollY)
			if line < 0 || line >= height {
				continue
			}
			switch rr.Row.Kind {
			case listview.RowHeader:
				lines[line] = headerStyle.Render("── " + rr.Row.Section + " ──")
			case listview.RowCell:
				style := cellStyle
				if rr.Row.Local%2 == 1 {
					style = altStyle
				}
				lines[line] = style.Render("  " + rr.Row.Cell)
			}
		}
	}
	place(plan.LeadRows)
	place(plan.TrailRows)

	w := m.ctrl.Window()
	status := fmt.Sprintf(" rows %d-%d of %d  scroll %.0f/%.0f",
		w.First, w.Last, geom.RowCount(), m.vp.scrollY, m.vp.contentH)
	if m.status != "" {
		status += "  " + m.status
	}

	return strings.Join(lines, "\n") + "\n" + statusStyle.Render(status)
}

func main() {
	m, err := newModel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
