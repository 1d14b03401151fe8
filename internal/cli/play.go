package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/blastbay/mazelib/pkg/maze"
)

var (
	playerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	goalStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	wallStyle   = lipgloss.NewStyle().Foreground(colorDim)
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

// newPlayCmd creates the play command for interactive maze exploration.
func newPlayCmd() *cobra.Command {
	var (
		width     uint32
		height    uint32
		seed      uint64
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Walk through a maze in the terminal",
		Long:  `Generate a maze and walk through it with the arrow keys or hjkl. Reach the flag in the bottom-right corner to win; press q to give up.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if threshold < -1 || threshold > 100 {
				return fmt.Errorf("threshold must be between -1 and 100, got %d", threshold)
			}
			m, err := newPlayModel(width, height, seed, int8(threshold))
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().Uint32VarP(&width, "width", "W", 15, "maze width in cells")
	cmd.Flags().Uint32VarP(&height, "height", "H", 10, "maze height in cells")
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "random seed")
	cmd.Flags().IntVarP(&threshold, "threshold", "t", 30, "random selection percentage 0-100, -1 to randomize")

	return cmd
}

// playModel is the bubbletea model for the maze walk. The player moves one
// blockwise cell at a time; walls block movement.
type playModel struct {
	grid  maze.BlockView
	x, y  uint32 // player position in doubled coordinates
	goalX uint32
	goalY uint32
	steps int
	won   bool
}

func newPlayModel(width, height uint32, seed uint64, threshold int8) (playModel, error) {
	size := maze.RequiredBufferSize(width, height, true)
	if size == 0 {
		return playModel{}, fmt.Errorf("invalid maze dimensions %dx%d", width, height)
	}
	buf := make([]byte, size)
	if maze.Generate(width, height, seed, threshold, true, buf) == 0 {
		return playModel{}, fmt.Errorf("maze generation failed for %dx%d", width, height)
	}
	v, err := maze.NewBlockView(width, height, buf)
	if err != nil {
		return playModel{}, err
	}
	return playModel{
		grid:  v,
		x:     1,
		y:     1,
		goalX: 2*width - 1,
		goalY: 2*height - 1,
	}, nil
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	if m.won {
		return m, nil
	}

	nx, ny := m.x, m.y
	switch key.String() {
	case "up", "k":
		if m.y > 0 {
			ny--
		}
	case "down", "j":
		ny++
	case "left", "h":
		if m.x > 0 {
			nx--
		}
	case "right", "l":
		nx++
	default:
		return m, nil
	}

	if nx >= m.grid.Cols() || ny >= m.grid.Rows() || m.grid.Wall(nx, ny) {
		return m, nil
	}

	m.x, m.y = nx, ny
	m.steps++
	if m.x == m.goalX && m.y == m.goalY {
		m.won = true
	}
	return m, nil
}

func (m playModel) View() string {
	var sb strings.Builder

	sb.WriteString(StyleTitle.Render("mazelib"))
	sb.WriteString(StyleDim.Render(fmt.Sprintf("  steps: %d", m.steps)))
	sb.WriteString("\n\n")

	for y := uint32(0); y < m.grid.Rows(); y++ {
		for x := uint32(0); x < m.grid.Cols(); x++ {
			switch {
			case x == m.x && y == m.y:
				sb.WriteString(playerStyle.Render("@ "))
			case x == m.goalX && y == m.goalY:
				sb.WriteString(goalStyle.Render("⚑ "))
			case m.grid.Wall(x, y):
				sb.WriteString(wallStyle.Render("██"))
			default:
				sb.WriteString("  ")
			}
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	if m.won {
		sb.WriteString(wonStyle.Render(fmt.Sprintf("You made it in %d steps!", m.steps)))
		sb.WriteString(StyleDim.Render("  press q to exit"))
	} else {
		sb.WriteString(StyleDim.Render("arrows/hjkl move · q quits"))
	}
	sb.WriteByte('\n')

	return sb.String()
}
