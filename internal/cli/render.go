package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"regret-journal/internal/config"
	"regret-journal/internal/model"
	"regret-journal/internal/service"
)

// printer renders journal data for one output stream.
type printer struct {
	w        io.Writer
	r        *lipgloss.Renderer
	settings config.Settings

	title lipgloss.Style
	muted lipgloss.Style
}

func newPrinter(w io.Writer, settings config.Settings) *printer {
	r := lipgloss.NewRenderer(w)
	switch settings.Theme {
	case config.ThemeDark:
		r.SetHasDarkBackground(true)
	case config.ThemeLight:
		r.SetHasDarkBackground(false)
	}
	return &printer{
		w:        w,
		r:        r,
		settings: settings,
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C94B6C", Dark: "#E88BA3"}),
		muted:    r.NewStyle().Faint(true),
	}
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *printer) heading(text string) {
	p.printf("%s\n", p.title.Render(text))
}

func (p *printer) status(s model.RegretStatus) string {
	return p.r.NewStyle().Foreground(lipgloss.Color(s.Color())).Render(p.settings.StatusLabel(s))
}

func (p *printer) categoryLabel(c *model.Category) string {
	return p.r.NewStyle().Foreground(lipgloss.Color(c.Color())).Render(c.Name)
}

func (p *printer) regretLine(r *model.FinancialRegret) {
	line := fmt.Sprintf("%s  %s  %s  [%s]", shortID(r.ID.String()), r.Date.Local().Format("2006-01-02"), strings.TrimSpace(r.Title), p.status(r.StatusValue()))
	if name := r.CategoryName(); name != "" {
		line += p.muted.Render(" (" + name + ")")
	}
	p.printf("%s\n", line)
}

func (p *printer) regretDetail(r *model.FinancialRegret) {
	p.heading(r.Title)
	p.printf("ID:        %s\n", r.ID)
	p.printf("Date:      %s\n", r.Date.Local().Format("January 2, 2006"))
	p.printf("Status:    %s\n", p.status(r.StatusValue()))
	if name := r.CategoryName(); name != "" {
		p.printf("Category:  %s\n", name)
	}
	if !r.MoneyImpact.IsZero() {
		p.printf("Impact:    %s\n", r.MoneyImpact.StringFixed(2))
	}
	p.printf("Intensity: %d/10\n", r.EmotionalIntensity)
	p.printf("\n%s\n", r.DescriptionText)
	if f := r.Feeling(); f != "" {
		p.printf("\nInitial feeling:\n%s\n", f)
	}
	if r.HasLesson() {
		p.printf("\nLesson learned:\n%s\n", r.Lesson())
	}
}

func (p *printer) regretList(regrets []model.FinancialRegret, empty string) {
	if len(regrets) == 0 {
		p.printf("%s\n", p.muted.Render(empty))
		return
	}
	for i := range regrets {
		p.regretLine(&regrets[i])
	}
}

func (p *printer) categoryStats(c *model.Category, stats service.CategoryStats) {
	p.printf("%-3d %s  %d regrets, %d%% transformation rate\n", c.Order, p.categoryLabel(c), stats.Count, percent(stats.TransformationRate))
}

func percent(rate float64) int {
	return int(rate * 100)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
