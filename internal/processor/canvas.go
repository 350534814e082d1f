package processor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var ErrInvalidSize = errors.New("invalid canvas size")

///////////////////////////////////////////////////////////////////////////////
// Canvas
///////////////////////////////////////////////////////////////////////////////

// Canvas is an off-screen grid of cells backed by a tcell simulation screen.
// Writes outside the grid are clipped.
type Canvas struct {
	screen tcell.SimulationScreen
	style  tcell.Style
	width  int
	height int
}

func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen initialization error: %w", err)
	}
	screen.SetSize(width, height)

	return &Canvas{
		screen: screen,
		style:  tcell.StyleDefault,
		width:  width,
		height: height,
	}, nil
}

// WriteAt writes text from column x of row y and returns the column after
// the last rune written.
func (c *Canvas) WriteAt(x, y int, text string) int {
	if y < 0 || y >= c.height {
		return x
	}
	for _, r := range text {
		if x >= c.width {
			break
		}
		if x >= 0 {
			c.screen.SetContent(x, y, r, nil, c.style)
		}
		x++
	}
	return x
}

// FillRun writes n copies of r from column x of row y.
func (c *Canvas) FillRun(x, y, n int, r rune) int {
	if n <= 0 {
		return x
	}
	return c.WriteAt(x, y, strings.Repeat(string(r), n))
}

// PlainText returns the grid content, one line per row, trailing spaces and
// trailing empty rows removed.
func (c *Canvas) PlainText() string {
	c.screen.Show()

	lines := make([]string, 0, c.height)
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		for x := 0; x < c.width; x++ {
			mainc, _, _, _ := c.screen.GetContent(x, y)
			// Empty cells are 0, not space
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
		}
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) Close() {
	c.screen.Fini()
}
