package export

import (
	"fmt"

	"regret-journal/internal/model"
)

// ShareText renders a single regret as a plain-text card.
func ShareText(r *model.FinancialRegret) string {
	lesson := r.Lesson()
	if lesson == "" {
		lesson = "No lesson recorded yet"
	}
	return fmt.Sprintf("Financial Reflection\n\n%s\n\n%s\n\n%s", r.Title, r.DescriptionText, lesson)
}
