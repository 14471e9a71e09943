package models

// Visibility is the three-way classification of a catalog row. A hard-deleted
// product has no row at all, so only the first two states are representable on
// a loaded Product.
type Visibility string

const (
	VisibilityActive   Visibility = "active"
	VisibilityDisabled Visibility = "disabled"
)

func (v Visibility) Valid() bool {
	return v == VisibilityActive || v == VisibilityDisabled
}

// Visibility collapses the is_active / deleted_at column pair into a single
// state so check sites cannot consult one flag and forget the other.
func (p *Product) Visibility() Visibility {
	if p.IsActive && p.DeletedAt == nil {
		return VisibilityActive
	}
	return VisibilityDisabled
}
