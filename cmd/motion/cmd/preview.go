package cmd

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/pflag"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/config"
	"github.com/go-drift/motion/pkg/overlay"
	"github.com/go-drift/motion/pkg/wheel"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Watch the animations in the terminal",
		Long: `Run the wheel picker and the overlay transition live in the terminal.

Keys:
  up/k, down/j   move the wheel one item (spring animated)
  [ and ]        drag the wheel by a quarter row
  enter          release the drag; the wheel settles on the nearest item
  mouse wheel    drag and release
  space          toggle the overlay
  esc            dismiss the overlay
  q              quit`,
		Usage: "motion preview [--config f] [--placement p]",
		Flags: func(fs *pflag.FlagSet) {
			fs.String("config", config.FileName, "configuration file (ignored when absent)")
			fs.String("placement", "", "override overlay.placement (top, right, bottom, left)")
		},
		Run: runPreview,
	})
}

func runPreview(fs *pflag.FlagSet, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument: %s", args[0])
	}
	path, _ := fs.GetString("config")
	resolved, err := config.LoadResolved(path)
	if err != nil {
		return err
	}
	if name, _ := fs.GetString("placement"); name != "" {
		p, err := overlay.ParsePlacement(name)
		if err != nil {
			return err
		}
		resolved.Placement = p
	}

	model := newPreviewModel(resolved, previewOptions())
	defer model.dispose()
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func previewOptions() []wheel.Option[string] {
	months := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	out := make([]wheel.Option[string], len(months))
	for i, m := range months {
		out[i] = wheel.Option[string]{Label: m, Value: strings.ToLower(m[:3])}
	}
	return out
}

// frameMsg is the preview's frame clock.
type frameMsg time.Time

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 2)
)

type previewModel struct {
	cfg    *config.Resolved
	picker *wheel.Picker[string]
	rows   *wheel.ItemCache[string, string]
	ctrl   *overlay.Controller
	panel  string
	width  int
	height int
}

func newPreviewModel(cfg *config.Resolved, options []wheel.Option[string]) *previewModel {
	m := &previewModel{cfg: cfg}
	m.picker = wheel.NewPicker(options, cfg.PickerConfig())
	m.rows = wheel.NewItemCache(func(item wheel.Item[string]) string {
		return fmt.Sprintf("%2d  %-10s", item.Index+1, item.Label)
	})
	m.ctrl = overlay.NewController(cfg.OverlayOptions())
	m.panel = panelStyle.Render(fmt.Sprintf("%s overlay\n\nspace to toggle\nesc to dismiss", cfg.Placement))
	return m
}

func (m *previewModel) Init() tea.Cmd {
	return m.tick()
}

func (m *previewModel) tick() tea.Cmd {
	return tea.Tick(m.cfg.FrameDuration(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		animation.StepTickers()
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		// The panel's rendered size is its layout measurement.
		m.ctrl.OnLayout(overlay.Extent{
			Height: float64(lipgloss.Height(m.panel)),
			Width:  float64(lipgloss.Width(m.panel)),
		})
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.picker.ScrollBy(-m.picker.ItemHeight() / 2)
			m.picker.Settle()
		case tea.MouseButtonWheelDown:
			m.picker.ScrollBy(m.picker.ItemHeight() / 2)
			m.picker.Settle()
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.nudge(-1)
		case "down", "j":
			m.nudge(1)
		case "[":
			m.picker.ScrollBy(-m.picker.ItemHeight() / 4)
		case "]":
			m.picker.ScrollBy(m.picker.ItemHeight() / 4)
		case "enter":
			m.picker.Settle()
		case " ":
			m.ctrl.SetVisible(!m.ctrl.Visible())
		case "esc":
			m.ctrl.Dismiss()
		}
	}
	return m, nil
}

func (m *previewModel) nudge(delta int) {
	target := int(math.Round(m.picker.Driver().Target()))
	m.picker.SelectIndex(target + delta)
}

func (m *previewModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("motion preview"))
	b.WriteString("\n\n")
	b.WriteString(m.wheelView())
	b.WriteString("\n")

	item, _ := m.picker.SelectedItem()
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"selected %s  position %.2f  scroll %.0f  |  overlay %s  offset %.1f  opacity %.2f",
		item.Label, m.picker.Position().Value(), m.picker.Offset(),
		m.ctrl.Phase(), m.ctrl.Translation().Value(), m.ctrl.Opacity().Value(),
	)))
	b.WriteString("\n\n")
	b.WriteString(m.overlayView())
	return b.String()
}

func (m *previewModel) wheelView() string {
	items := m.picker.Items()
	var lines []string
	for _, i := range m.picker.Visible() {
		t := m.picker.Transform(i)
		style := lipgloss.NewStyle().
			Foreground(grayLevel(t.Opacity)).
			PaddingLeft(int(math.Round(math.Abs(t.RotationDegrees) / 10)))
		if i == m.picker.Selected() {
			style = style.Bold(true)
		}
		row := m.rows.Row(items[i])
		lines = append(lines, style.Render(fmt.Sprintf("%s  x%.2f %+4.0f°", row, t.Scale, t.RotationDegrees)))
	}
	return strings.Join(lines, "\n")
}

func (m *previewModel) overlayView() string {
	opacity := m.ctrl.Opacity().Value()
	if opacity <= 0.01 {
		return ""
	}
	panel := lipgloss.NewStyle().Foreground(grayLevel(opacity)).Render(m.panel)
	offset := int(math.Round(math.Abs(m.ctrl.Translation().Value())))
	return slide(panel, m.ctrl.Placement(), offset)
}

// slide shifts a rendered panel offset cells toward its edge. Bottom and right
// panels are pushed by a margin; top and left panels are clipped at the
// screen edge.
func slide(panel string, placement overlay.Placement, offset int) string {
	if offset <= 0 {
		return panel
	}
	switch placement {
	case overlay.Bottom:
		return lipgloss.NewStyle().MarginTop(offset).Render(panel)
	case overlay.Right:
		return lipgloss.NewStyle().MarginLeft(offset).Render(panel)
	case overlay.Top:
		lines := strings.Split(panel, "\n")
		return strings.Join(lines[min(offset, len(lines)):], "\n")
	case overlay.Left:
		lines := strings.Split(panel, "\n")
		for i, line := range lines {
			lines[i] = ansi.TruncateLeft(line, offset, "")
		}
		return strings.Join(lines, "\n")
	}
	return panel
}

// grayLevel maps 0..1 onto the 24-step grayscale ramp of the 256-color palette.
func grayLevel(v float64) lipgloss.Color {
	v = min(max(v, 0), 1)
	return lipgloss.Color(fmt.Sprintf("%d", 232+int(math.Round(v*23))))
}

func (m *previewModel) dispose() {
	m.ctrl.Dispose()
	m.picker.Dispose()
}
