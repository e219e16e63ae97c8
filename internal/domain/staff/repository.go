package staff

import "context"

// Repository is the roster backing store. Implementations load the
// full name->regime list and persist appended entries.
type Repository interface {
	// LoadAll returns every roster entry in stored order. Duplicate
	// names are returned as-is; the directory resolves them last-wins.
	LoadAll(ctx context.Context) ([]Staff, error)

	// Append persists an additional roster entry.
	Append(ctx context.Context, s Staff) error
}
