package cmd

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/go-drift/progressring/cmd/ringdemo/internal/screen"
	"github.com/go-drift/progressring/pkg/raster"
	"github.com/go-drift/progressring/pkg/terminal"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))
)

// statusLines is the number of terminal rows below the ring.
const statusLines = 2

func newPlayCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the demo in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := flags.resolveConfig(cmd)
			if err != nil {
				return err
			}
			s, err := screen.New(resolved.Screen)
			if err != nil {
				return err
			}
			stop := s.Start()
			defer stop()

			program := tea.NewProgram(newPlayModel(s, resolved.Screen.Interval, time.Now()), tea.WithAltScreen())
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("terminal program failed: %w", err)
			}
			if m, ok := final.(playModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}
}

type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// playModel is the bubbletea model for the play command. The screen advances
// by wall-clock time between ticks.
type playModel struct {
	screen   *screen.DemoScreen
	interval time.Duration
	last     time.Time

	width, height int
	view          string
	err           error
	quitting      bool
}

func newPlayModel(s *screen.DemoScreen, interval time.Duration, now time.Time) playModel {
	m := playModel{screen: s, interval: interval, last: now, width: 64, height: 32 + statusLines}
	m.render()
	return m
}

func (m playModel) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.render()
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if dt := now.Sub(m.last); dt > 0 {
			m.screen.Advance(dt)
		}
		m.last = now
		m.render()
		if m.err != nil {
			return m, tea.Quit
		}
		return m, tickCmd(m.interval)
	}
	return m, nil
}

func (m *playModel) render() {
	img, err := raster.Render(m.screen.Frame(), m.screen.Background())
	if err != nil {
		m.err = err
		return
	}
	size := m.screen.Size()
	cols, rows := fitGrid(m.width, m.height-statusLines, size.Width, size.Height)
	m.view = terminal.Render(img, cols, rows)
}

func (m playModel) View() string {
	if m.quitting {
		return ""
	}
	if m.err != nil {
		return errorStyle.Render(m.err.Error()) + "\n"
	}
	status := fmt.Sprintf("cycle %d  %ss  %3.0f%%",
		m.screen.Cycle(), m.screen.LabelText(), m.screen.Ring().Progress()*100)
	return m.view + "\n" + statusStyle.Render(status) + "\n" + helpStyle.Render("q quit")
}

// fitGrid returns the largest cell grid that fits cols by rows and keeps the
// image aspect ratio. Each cell holds two vertically stacked pixels.
func fitGrid(cols, rows int, width, height float64) (int, int) {
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return 0, 0
	}
	scale := min(float64(cols)/width, float64(2*rows)/height)
	c := int(math.Round(width * scale))
	r := int(math.Round(height * scale / 2))
	return max(c, 1), max(r, 1)
}
