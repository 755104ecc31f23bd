package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sentiment-advisor/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#3B82F6"))

	headlineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))

	positiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	negativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	buyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#10B981")).
			Padding(0, 2)

	sellStyle = buyStyle.
			Foreground(lipgloss.Color("#EF4444")).
			BorderForeground(lipgloss.Color("#EF4444"))

	holdStyle = buyStyle.
			Foreground(lipgloss.Color("#F59E0B")).
			BorderForeground(lipgloss.Color("#F59E0B"))
)

// Presenter renders a recommendation as a human-readable terminal report.
type Presenter struct {
	out io.Writer
}

func NewPresenter() *Presenter {
	return &Presenter{out: os.Stdout}
}

// NewPresenterTo renders to a specific writer, used by tests.
func NewPresenterTo(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

// Render prints the full run report: price, scored headlines, average
// sentiment, and the final recommendation.
func (p *Presenter) Render(rec types.Recommendation) {
	fmt.Fprintln(p.out, titleStyle.Render(fmt.Sprintf("Sentiment Advisor - %s", rec.Asset)))
	fmt.Fprintln(p.out)

	fmt.Fprintln(p.out, sectionStyle.Render("Price"))
	fmt.Fprintf(p.out, "  %s: %.4f %s\n\n", rec.Quote.Asset, rec.Quote.Price, strings.ToUpper(rec.Quote.Currency))

	fmt.Fprintln(p.out, sectionStyle.Render("Headlines"))
	for _, s := range rec.Scores {
		fmt.Fprintf(p.out, "  %s %s\n", renderScore(s), headlineStyle.Render(s.Headline))
	}
	fmt.Fprintln(p.out)

	fmt.Fprintln(p.out, sectionStyle.Render("Sentiment"))
	fmt.Fprintf(p.out, "  Average score: %.4f\n\n", rec.AvgSentiment)

	fmt.Fprintln(p.out, sectionStyle.Render("Recommendation"))
	fmt.Fprintln(p.out, "  "+renderAction(rec.Action))
}

// RenderFailure prints an abort notice when no recommendation was produced.
func (p *Presenter) RenderFailure(err error) {
	fmt.Fprintln(p.out, negativeStyle.Render("No recommendation produced: "+err.Error()))
}

func renderScore(s types.HeadlineScore) string {
	v := fmt.Sprintf("%+.2f", s.Signed())
	if s.Label == types.Negative {
		return negativeStyle.Render(v)
	}
	return positiveStyle.Render(v)
}

func renderAction(a types.Action) string {
	switch a {
	case types.Buy:
		return buyStyle.Render(string(a))
	case types.Sell:
		return sellStyle.Render(string(a))
	default:
		return holdStyle.Render(string(a))
	}
}
