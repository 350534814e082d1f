package exporter

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/badele/textkit/internal/processor"
	"github.com/badele/textkit/internal/types"
)

const (
	MinChartWidth = 20
	barRune       = '█'
)

var ErrCanvasTooSmall = errors.New("chart canvas too small")

// RenderBarChart draws one horizontal bar per word, at most height bars, on a
// width columns canvas. Bars are scaled to the largest count.
func RenderBarChart(words []types.WordCount, width, height int) (string, error) {
	if width < MinChartWidth || height < 1 {
		return "", fmt.Errorf("%w: %dx%d (minimum %dx1)", ErrCanvasTooSmall, width, height, MinChartWidth)
	}
	if len(words) == 0 {
		return "", nil
	}
	if len(words) > height {
		words = words[:height]
	}

	labelWidth, maxCount := 0, 0
	for _, wc := range words {
		labelWidth = max(labelWidth, len(wc.Word))
		maxCount = max(maxCount, wc.Count)
	}
	labelWidth = min(labelWidth, width/3)
	countWidth := len(strconv.Itoa(maxCount))
	barSpace := width - labelWidth - countWidth - 2

	canvas, err := processor.NewCanvas(width, len(words))
	if err != nil {
		return "", fmt.Errorf("error creating canvas: %w", err)
	}
	defer canvas.Close()

	for y, wc := range words {
		canvas.WriteAt(0, y, truncate(wc.Word, labelWidth))
		x := canvas.FillRun(labelWidth+1, y, barLength(wc.Count, maxCount, barSpace), barRune)
		canvas.WriteAt(x+1, y, strconv.Itoa(wc.Count))
	}

	return canvas.PlainText(), nil
}

// barLength scales count to space columns; a positive count always gets a bar.
func barLength(count, maxCount, space int) int {
	if count <= 0 || maxCount <= 0 {
		return 0
	}
	n := count * space / maxCount
	return max(n, 1)
}
