// Package render formats evaluation results and explanations for the
// terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spigell/interview-coach/internal/evaluator"
	"github.com/spigell/interview-coach/internal/question"
)

const (
	colorGood = lipgloss.Color("42")
	colorOK   = lipgloss.Color("178")
	colorBad  = lipgloss.Color("160")
	colorDim  = lipgloss.Color("242")
)

func stylize(s string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return s
	}
	return lipgloss.NewStyle().Foreground(color).Render(s)
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 8:
		return colorGood
	case score >= 5:
		return colorOK
	default:
		return colorBad
	}
}

// Feedback renders an evaluation result as a terminal block.
func Feedback(result *evaluator.Result, noColor bool) string {
	var b strings.Builder

	b.WriteString(stylize("--- Feedback ---", noColor, colorDim))
	b.WriteString("\n")
	b.WriteString(stylize(fmt.Sprintf("Score: %d/10", result.Score), noColor, scoreColor(result.Score)))
	b.WriteString("\n")

	writeList(&b, "Strengths:", result.Strengths, noColor, colorGood)
	writeList(&b, "Areas to improve:", result.Weaknesses, noColor, colorBad)
	writeList(&b, "Actionable tips:", result.Tips, noColor, colorOK)

	b.WriteString(stylize("----------------", noColor, colorDim))

	return b.String()
}

// Explanation renders a question's reference explanation and further-study
// topics.
func Explanation(q *question.Question, noColor bool) string {
	var b strings.Builder

	b.WriteString(stylize("--- Explanation ---", noColor, colorDim))
	b.WriteString("\n")

	if q.Explanation != "" {
		b.WriteString(q.Explanation)
		b.WriteString("\n")
	} else {
		b.WriteString("No detailed explanation available for this question.\n")
	}

	writeList(&b, "References to look for (titles/topics):", q.References, noColor, colorOK)

	b.WriteString(stylize("-------------------", noColor, colorDim))

	return b.String()
}

func writeList(b *strings.Builder, header string, items []string, noColor bool, color lipgloss.Color) {
	if len(items) == 0 {
		return
	}

	b.WriteString(header)
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString(" - ")
		b.WriteString(stylize(item, noColor, color))
		b.WriteString("\n")
	}
}
