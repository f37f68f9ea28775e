package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderConfidence renders a confidence score as a bar like [████░░░░]  45%.
// Scores of 80 and above are red, 50 and above yellow, otherwise dim.
func RenderConfidence(score, width int) string {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	if width < 2 {
		width = 2
	}

	filled := score * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleDim
	switch {
	case score >= 80:
		style = StyleRed
	case score >= 50:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), score)
}
