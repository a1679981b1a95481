// Package console renders questions as plain console text.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/YourNeshama/java-maze-game/internal/domain/entities"
)

const noExplanationText = "No explanation available."

// FormatQuestion renders the prompt, numbered options and difficulty.
func FormatQuestion(q *entities.Question) string {
	return formatQuestion(q, true)
}

// FormatExplanation renders the explanation line, or a placeholder if there is none.
func FormatExplanation(q *entities.Question) string {
	if q == nil || strings.TrimSpace(q.Explanation()) == "" {
		return noExplanationText
	}
	return "Explanation: " + q.Explanation()
}

func formatQuestion(q *entities.Question, noColor bool) string {
	var b strings.Builder

	b.WriteString(stylize("Question: ", noColor, lipgloss.Color("33")))
	b.WriteString(q.Text())
	b.WriteByte('\n')

	for i, option := range q.Options() {
		fmt.Fprintf(&b, "%d) %s\n", i+1, option)
	}

	b.WriteString(stylize("Difficulty: ", noColor, difficultyColor(q.Difficulty())))
	b.WriteString(q.Difficulty().String())
	b.WriteByte('\n')

	return b.String()
}

// Printer writes questions to an output stream.
type Printer struct {
	out     io.Writer
	noColor bool
}

// NewPrinter creates a Printer. Headings are colored unless noColor is set.
func NewPrinter(out io.Writer, noColor bool) *Printer {
	return &Printer{out: out, noColor: noColor}
}

// PrintQuestion writes the question block.
func (p *Printer) PrintQuestion(q *entities.Question) error {
	_, err := io.WriteString(p.out, formatQuestion(q, p.noColor))
	return err
}

// PrintExplanation writes the explanation line.
func (p *Printer) PrintExplanation(q *entities.Question) error {
	_, err := io.WriteString(p.out, stylize(FormatExplanation(q), p.noColor, lipgloss.Color("244"))+"\n")
	return err
}

// PrintAnswer writes the correct option followed by the explanation.
func (p *Printer) PrintAnswer(q *entities.Question) error {
	line := fmt.Sprintf("Answer: %d) %s\n", q.CorrectIndex()+1, q.CorrectOptionText())
	if _, err := io.WriteString(p.out, stylize(line, p.noColor, lipgloss.Color("42"))); err != nil {
		return err
	}
	return p.PrintExplanation(q)
}

// stylize applies a foreground color unless color is disabled.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

func difficultyColor(d entities.Difficulty) lipgloss.Color {
	switch d {
	case entities.DifficultyEasy:
		return lipgloss.Color("42")
	case entities.DifficultyMedium:
		return lipgloss.Color("214")
	case entities.DifficultyHard:
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("244")
	}
}
