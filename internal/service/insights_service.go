package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"regret-journal/internal/model"
)

// MonthCount is the number of regrets dated within one calendar month.
type MonthCount struct {
	Month time.Time
	Label string
	Count int
}

// Summary is the dashboard headline.
type Summary struct {
	Total          int
	Transformed    int
	GrowthProgress float64
	TotalImpact    decimal.Decimal
}

// TimelineFilter selects which regrets the timeline shows.
type TimelineFilter int

const (
	TimelineAll TimelineFilter = iota
	TimelineThisYear
	TimelineByCategory
)

// InsightsService aggregates regrets for the dashboard and insight views.
type InsightsService struct {
	regrets    *RegretService
	categories *CategoryService
	loc        *time.Location
}

func NewInsightsService(regrets *RegretService, categories *CategoryService, loc *time.Location) *InsightsService {
	if loc == nil {
		loc = time.Local
	}
	return &InsightsService{regrets: regrets, categories: categories, loc: loc}
}

func (s *InsightsService) Summary(ctx context.Context) Summary {
	all := s.regrets.FetchAll(ctx)
	sum := Summary{Total: len(all), TotalImpact: decimal.Zero, GrowthProgress: growthProgress(all)}
	for i := range all {
		if all[i].IsTransformed() {
			sum.Transformed++
		}
		sum.TotalImpact = sum.TotalImpact.Add(all[i].MoneyImpact)
	}
	return sum
}

// GroupByMonth counts regrets per calendar month, oldest month first.
func (s *InsightsService) GroupByMonth(regrets []model.FinancialRegret) []MonthCount {
	counts := make(map[time.Time]int)
	for i := range regrets {
		d := regrets[i].Date.In(s.loc)
		month := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, s.loc)
		counts[month]++
	}

	out := make([]MonthCount, 0, len(counts))
	for month, n := range counts {
		out = append(out, MonthCount{Month: month, Label: month.Format("Jan 2006"), Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// MostTransformedCategory returns the category with the highest
// transformation rate; the earliest in display order wins a tie. It returns
// nil when no category has any regrets.
func (s *InsightsService) MostTransformedCategory(ctx context.Context) (*model.Category, CategoryStats) {
	categories := s.categories.FetchAll(ctx)
	regrets := s.regrets.FetchAll(ctx)

	var best *model.Category
	var bestStats CategoryStats
	for i := range categories {
		stats := s.categories.Stats(&categories[i], regrets)
		if stats.Count == 0 {
			continue
		}
		if best == nil || stats.TransformationRate > bestStats.TransformationRate {
			best, bestStats = &categories[i], stats
		}
	}
	return best, bestStats
}

// LessonWords returns up to limit distinct words taken from recorded lessons,
// in the order they first appear. A limit of 0 or less means no limit.
func (s *InsightsService) LessonWords(regrets []model.FinancialRegret, limit int) []string {
	seen := make(map[string]struct{})
	var words []string
	for i := range regrets {
		for _, w := range strings.Fields(regrets[i].Lesson()) {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			words = append(words, w)
			if limit > 0 && len(words) == limit {
				return words
			}
		}
	}
	return words
}

// Timeline returns the regrets for filter, intersected with the search
// results for query when it is not blank. TimelineByCategory without a
// category name shows nothing.
func (s *InsightsService) Timeline(ctx context.Context, filter TimelineFilter, categoryName, query string, now time.Time) []model.FinancialRegret {
	all := s.regrets.FetchAll(ctx)

	filtered := make([]model.FinancialRegret, 0, len(all))
	switch filter {
	case TimelineThisYear:
		year := now.In(s.loc).Year()
		for _, r := range all {
			if r.Date.In(s.loc).Year() == year {
				filtered = append(filtered, r)
			}
		}
	case TimelineByCategory:
		if categoryName == "" {
			return []model.FinancialRegret{}
		}
		for _, r := range all {
			if r.CategoryRef().MatchesName(categoryName) {
				filtered = append(filtered, r)
			}
		}
	default:
		filtered = all
	}

	if strings.TrimSpace(query) == "" {
		return filtered
	}
	hits := make(map[uuid.UUID]struct{})
	for _, r := range s.regrets.Search(ctx, query, nil) {
		hits[r.ID] = struct{}{}
	}
	out := make([]model.FinancialRegret, 0, len(filtered))
	for _, r := range filtered {
		if _, ok := hits[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}
