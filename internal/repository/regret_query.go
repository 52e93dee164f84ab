package repository

import (
	"strings"

	"gorm.io/gorm"

	"regret-journal/internal/model"
)

// RegretQuery is a conjunction of optional regret predicates. The zero value
// matches every regret.
type RegretQuery struct {
	// Status keeps regrets whose stored status equals it.
	Status model.RegretStatus
	// Category keeps regrets linked to the category or carrying its name.
	Category *model.Category
	// Text keeps regrets whose title, description, initial feeling or lesson
	// contains it, ignoring case. Surrounding whitespace is trimmed and an
	// empty result disables the predicate.
	Text string
}

var searchColumns = []string{"title", "description_text", "initial_feeling", "lesson_learned"}

func (q RegretQuery) apply(db *gorm.DB) *gorm.DB {
	if q.Status != "" {
		db = db.Where("status = ?", string(q.Status))
	}
	if q.Category != nil {
		db = db.Where("(category_id = ? OR category = ?)", q.Category.ID, q.Category.Name)
	}
	if term := strings.TrimSpace(q.Text); term != "" {
		pattern := "%" + escapeLike(foldText(term)) + "%"
		clauses := make([]string, len(searchColumns))
		args := make([]any, len(searchColumns))
		for i, col := range searchColumns {
			clauses[i] = "fold(COALESCE(" + col + `, '')) LIKE ? ESCAPE '\'`
			args[i] = pattern
		}
		db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
	return db
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
