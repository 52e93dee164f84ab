package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"regret-journal/internal/model"
)

// regretRecord is the JSON shape of one regret. Absent text is "".
type regretRecord struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	Date               string  `json:"date"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	MoneyImpact        float64 `json:"moneyImpact"`
	EmotionalIntensity int     `json:"emotionalIntensity"`
	InitialFeeling     string  `json:"initialFeeling"`
	LessonLearned      string  `json:"lessonLearned"`
	Status             string  `json:"status"`
}

// JSON writes regrets as a pretty-printed array.
func JSON(w io.Writer, regrets []model.FinancialRegret) error {
	if len(regrets) == 0 {
		return ErrEmpty
	}

	records := make([]regretRecord, 0, len(regrets))
	for i := range regrets {
		r := &regrets[i]
		records = append(records, regretRecord{
			ID:                 r.ID.String(),
			Title:              r.Title,
			Date:               r.Date.UTC().Format(time.RFC3339),
			Category:           r.CategoryName(),
			Description:        r.DescriptionText,
			MoneyImpact:        r.MoneyImpact.InexactFloat64(),
			EmotionalIntensity: r.EmotionalIntensity,
			InitialFeeling:     r.Feeling(),
			LessonLearned:      r.Lesson(),
			Status:             r.Status,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode regrets: %w", err)
	}
	return nil
}
