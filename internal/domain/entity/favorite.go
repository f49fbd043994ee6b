package entity

// FavoriteList is the per-user set of bookmarked product identifiers.
// User is an opaque caller-supplied identity key; the favorites subsystem does
// not cross-check it against the account store. The list is created implicitly
// by the first toggle and is never explicitly deleted.
type FavoriteList struct {
	User       string   // Opaque identity key (account id or email by convention).
	ProductIDs []string // Unordered set of product identifiers.
}

// ToggleStatus is the outcome of a favorite toggle.
type ToggleStatus string

const (
	// ToggleAdded means the product was absent and has been inserted.
	ToggleAdded ToggleStatus = "added"
	// ToggleRemoved means the product was present and has been deleted.
	ToggleRemoved ToggleStatus = "removed"
)
