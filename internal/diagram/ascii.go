package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// DrawASCIIPressureDiagram creates an ASCII representation of the footing
// section with the bearing pressure hanging below its base
func DrawASCIIPressureDiagram(data PressureDiagramData) string {
	var sb strings.Builder

	widthChars := 40
	heightChars := 8

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  FOOTING SECTION ALONG %s (%s = %.2f ft)\n", data.Axis, data.Axis, data.Dimension))
	sb.WriteString("  ───────────────────────────────────────────\n")

	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", widthChars)))
	sb.WriteString(fmt.Sprintf("  │%s│  t = %.0f in\n", strings.Repeat(" ", widthChars), data.Thickness))
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", widthChars)))

	// Bar heights per column
	bars := make([]int, widthChars)
	for i := range bars {
		x := (float64(i) + 0.5) / float64(widthChars) * data.Dimension
		if data.QMax > 0 {
			bars[i] = int(data.PressureAt(x)/data.QMax*float64(heightChars) + 0.5)
		}
	}

	for row := 1; row <= heightChars; row++ {
		var line strings.Builder
		for _, h := range bars {
			if h >= row {
				line.WriteString("░")
			} else {
				line.WriteString(" ")
			}
		}
		sb.WriteString(fmt.Sprintf("   %s\n", line.String()))
	}

	near := fmt.Sprintf("%.0f psf", psf(data.QNear))
	far := fmt.Sprintf("%.0f psf", psf(data.QFar))
	gap := widthChars + 2 - len(near) - len(far)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(fmt.Sprintf("  %s%s%s\n", near, strings.Repeat(" ", gap), far))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ░░░ = Soil bearing pressure\n")
	if data.Triangular {
		sb.WriteString(fmt.Sprintf("  Partial contact over %seff = %.3f ft (triangular)\n", data.Axis, data.EffectiveDim))
	} else {
		sb.WriteString("  Full contact (trapezoidal)\n")
	}

	return sb.String()
}

// DrawResidualGraph plots d − rhs(d) against the trial depth index. The
// root is where the curve crosses zero.
func DrawResidualGraph(data ResidualData) string {
	if len(data.Residuals) == 0 {
		return ""
	}
	caption := "d - rhs(d) (ft)"
	if data.Converged {
		caption = fmt.Sprintf("d - rhs(d) (ft), root at d = %.2f ft", data.Root)
	}
	graph := asciigraph.Plot(data.Residuals,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
	return "\n" + graph + "\n"
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s with spaces to n runes
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
