package sim

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mondrian-wm/mondrian/internal/config"
	"github.com/mondrian-wm/mondrian/internal/desktop"
	"github.com/mondrian-wm/mondrian/internal/geometry"
)

// TickMsg drives the animation and status bar update loop.
type TickMsg time.Time

// ConfigReloadedMsg carries a freshly loaded configuration from the file
// watcher into the update loop.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Model is the bubbletea model of the demo desktop. New windows open at the
// pointer, close with a keypress, and the tiling engine keeps every
// workspace laid out.
type Model struct {
	desk     *Desktop
	router   *desktop.Router
	animator *Animator
	store    *config.Store
	sysinfo  *SysInfo
	logs     *LogBuffer

	width    int
	height   int
	counter  int
	showLogs bool

	dragging *Window
}

// New creates the demo model. The monitor bounds start empty and follow the
// hosting terminal's size.
func New(store *config.Store) *Model {
	animator := NewAnimator(store)
	desk := NewDesktop(store.Config().Demo.Workspaces, geometry.Rect{})
	return &Model{
		desk:     desk,
		router:   desktop.NewRouter(desk, store, animator),
		animator: animator,
		store:    store,
		sysinfo:  &SysInfo{},
		logs:     &LogBuffer{},
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd schedules the next animation frame.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles all incoming messages and updates the demo state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.animator.Update()
		m.sysinfo.Update()
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// The bottom row is the status bar.
		m.desk.Resize(geometry.Rect{X: 0, Y: 0, Width: msg.Width, Height: max(msg.Height-1, 0)})
		m.router.Autotile(desktop.Options{All: true})
		return m, nil

	case ConfigReloadedMsg:
		config.AnimationsEnabled = msg.Config.Animation.Enabled
		m.store.Update(msg.Config)
		m.logs.Logf("config reloaded, gap %d", msg.Config.Tiling.Spacing)
		m.router.Autotile(desktop.Options{All: true})
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseMotionMsg:
		mouse := msg.Mouse()
		m.desk.SetPointer(mouse.X, mouse.Y)
		return m, nil

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		m.desk.SetPointer(mouse.X, mouse.Y)
		if mouse.Button == tea.MouseLeft && m.dragging == nil {
			if w := m.desk.WindowAt(mouse.X, mouse.Y); w != nil {
				m.dragging = w
				m.desk.BeginDrag(w)
			}
		}
		return m, nil

	case tea.MouseReleaseMsg:
		mouse := msg.Mouse()
		m.desk.SetPointer(mouse.X, mouse.Y)
		if m.dragging != nil {
			w := m.dragging
			m.dragging = nil
			m.desk.EndDrag(w)
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		m.router.Release()
		return m, tea.Quit

	case "n":
		m.counter++
		m.openWindow(fmt.Sprintf("window %d", m.counter))

	case "x":
		w := m.desk.WindowAt(m.desk.Pointer())
		if w == nil {
			w = m.desk.LastWindow()
		}
		if w != nil {
			m.desk.CloseWindow(w.ID())
			m.logs.Logf("closed %s", w.Title())
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.desk.SwitchWorkspace(int(key[0] - '0'))
		m.logs.Logf("workspace %d", m.desk.ActiveWorkspace())

	case "+", "=":
		m.adjustSpacing(1)

	case "-":
		m.adjustSpacing(-1)

	case "a":
		config.AnimationsEnabled = !config.AnimationsEnabled
		cfg := m.store.Config()
		cfg.Animation.Enabled = config.AnimationsEnabled
		m.store.Update(cfg)
		m.logs.Logf("animations %v", config.AnimationsEnabled)

	case "l":
		m.showLogs = !m.showLogs
	}

	return m, nil
}

// openWindow spawns a normal window near the pointer. The engine decides
// its final geometry; the spawn rect is only the animation's starting point.
func (m *Model) openWindow(title string) {
	px, py := m.desk.Pointer()
	spawn := geometry.Rect{X: px, Y: py, Width: 20, Height: 8}
	m.desk.AddWindow(title, desktop.FrameNormal, spawn)
	m.logs.Logf("opened %s", title)
}

// adjustSpacing nudges the gap size and reflows every workspace.
func (m *Model) adjustSpacing(delta int) {
	cfg := m.store.Config()
	cfg.Tiling.Spacing = max(cfg.Tiling.Spacing+delta, 0)
	m.store.Update(cfg)
	m.logs.Logf("gap %d", cfg.Tiling.Spacing)
	m.router.Autotile(desktop.Options{All: true})
}
