package model

import "github.com/google/uuid"

// CategoryRef is the category a regret belongs to. It is either empty, a bare
// name (records written before categories were stored as rows, or names with
// no matching row), or a link to a Category row. Name prefers the row.
type CategoryRef struct {
	name     string
	id       uuid.UUID
	category *Category
}

// NoCategory is the empty reference.
func NoCategory() CategoryRef {
	return CategoryRef{}
}

// CategoryNamed returns an unresolved reference. An empty name is NoCategory.
func CategoryNamed(name string) CategoryRef {
	return CategoryRef{name: name}
}

// CategoryOf returns a reference resolved to c. A nil c is NoCategory.
func CategoryOf(c *Category) CategoryRef {
	if c == nil {
		return NoCategory()
	}
	return CategoryRef{name: c.Name, id: c.ID, category: c}
}

func (r CategoryRef) IsZero() bool {
	return r.id == uuid.Nil && r.name == ""
}

// Linked reports whether the reference points at a category row.
func (r CategoryRef) Linked() bool {
	return r.id != uuid.Nil
}

// Resolved returns the loaded category row, or nil.
func (r CategoryRef) Resolved() *Category {
	return r.category
}

// Name is the effective display name.
func (r CategoryRef) Name() string {
	if r.category != nil {
		return r.category.Name
	}
	return r.name
}

// StoredName is the name kept alongside the link for older readers.
func (r CategoryRef) StoredName() string {
	return r.name
}

// Matches reports whether the reference points at c, either through the row
// identity or through the stored name.
func (r CategoryRef) Matches(c *Category) bool {
	if c == nil || r.IsZero() {
		return false
	}
	if r.id != uuid.Nil && r.id == c.ID {
		return true
	}
	return r.name != "" && r.name == c.Name
}

// MatchesName reports whether the row name or the stored name equals name.
func (r CategoryRef) MatchesName(name string) bool {
	if name == "" || r.IsZero() {
		return false
	}
	if r.category != nil && r.category.Name == name {
		return true
	}
	return r.name == name
}
