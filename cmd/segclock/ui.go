package main

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"segclock/internal/logger"
	"segclock/internal/widget"
)

// frameInterval is the host frame cadence (~30 fps).
const frameInterval = 33 * time.Millisecond

// adjustStep is the nominal per-keypress adjustment. The widget's
// Adjust adds one on top of the delta, so the step is passed minus one
// to move the display by exactly ten.
const adjustStep = 10

const snapshotFile = "segclock.png"

// ── Styles ───────────────────────────────────────────────────────

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Bold(true)

	statusRunStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	statusIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	statusAlarmStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fca5a5")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))
)

// frameMsg carries the wall-clock time of one animation frame.
type frameMsg time.Time

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// model is the bubbletea host around the timer widget. It owns nothing
// but the frame loop and key bindings; all timer state lives in the
// widget.
type model struct {
	w      *widget.Widget
	log    *logger.Logger
	notice string

	// pixel-pair style cache for the half-block view
	styles map[[2]color.RGBA]lipgloss.Style
}

func newModel(w *widget.Widget, log *logger.Logger) *model {
	return &model{
		w:      w,
		log:    log,
		styles: make(map[[2]color.RGBA]lipgloss.Style),
	}
}

func (m *model) Init() tea.Cmd {
	return nextFrame()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.w.Tick(time.Time(msg).UnixMilli())
		return m, nextFrame()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "s", "enter":
			m.w.Start()
			m.notice = ""
		case "x":
			m.w.Stop()
		case "r":
			m.w.Reset()
		case "+", "=":
			m.w.Adjust(adjustStep - 1)
		case "-", "_":
			m.w.Adjust(-adjustStep - 1)
		case "m":
			m.w.SilenceAlarm()
		case "p":
			m.notice = m.snapshot()
		}
	}
	return m, nil
}

// snapshot writes the current face to a PNG next to the binary.
func (m *model) snapshot() string {
	f, err := os.Create(snapshotFile)
	if err != nil {
		m.log.Error("snapshot: %v", err)
		return fmt.Sprintf("snapshot failed: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, m.w.CurrentBitmap()); err != nil {
		m.log.Error("snapshot encode: %v", err)
		return fmt.Sprintf("snapshot failed: %v", err)
	}
	m.log.Info("face snapshot written to %s", snapshotFile)
	return "saved " + snapshotFile
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("segclock — " + m.w.Theme().Name))
	b.WriteString("\n\n")
	b.WriteString(m.renderBitmap())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("s start · x stop · r reset · +/- adjust · m mute alarm · p snapshot · q quit"))
	b.WriteString("\n")
	return b.String()
}

// renderBitmap draws the face bitmap with half-block characters, two
// pixel rows per terminal line: the upper pixel as the foreground of
// '▀', the lower as its background.
func (m *model) renderBitmap() string {
	img := m.w.CurrentBitmap()
	bounds := img.Bounds()

	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := img.RGBAAt(x, y+1)
			b.WriteString(m.pairStyle(top, bottom).Render("▀"))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *model) pairStyle(top, bottom color.RGBA) lipgloss.Style {
	key := [2]color.RGBA{top, bottom}
	if style, ok := m.styles[key]; ok {
		return style
	}
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(top))).
		Background(lipgloss.Color(hexColor(bottom)))
	m.styles[key] = style
	return style
}

func (m *model) statusLine() string {
	remaining := fmt.Sprintf("display %d/%d", m.w.RemainingDisplayValue(), m.w.MaxValue())
	switch {
	case m.w.AlarmSounding():
		return statusAlarmStyle.Render("ALARM — press m to silence, r to reset")
	case m.w.Running():
		return statusRunStyle.Render("running · " + remaining)
	default:
		return statusIdleStyle.Render("stopped · " + remaining)
	}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
