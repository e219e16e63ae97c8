package staff

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
)

// Directory is the in-memory roster index. Names are unique; when the
// backing list carries duplicates, the last-loaded entry wins.
type Directory struct {
	repo    staff.Repository
	index   map[string]staff.Staff
	ordered []string
}

func NewDirectory(repo staff.Repository) *Directory {
	return &Directory{
		repo:  repo,
		index: make(map[string]staff.Staff),
	}
}

// Load (re)builds the index from the backing roster.
func (d *Directory) Load(ctx context.Context) error {
	members, err := d.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load staff roster: %w", err)
	}

	d.index = make(map[string]staff.Staff, len(members))
	d.ordered = d.ordered[:0]
	for _, m := range members {
		if _, seen := d.index[m.Name]; !seen {
			d.ordered = append(d.ordered, m.Name)
		}
		d.index[m.Name] = m
	}
	return nil
}

// GetByName looks up a staff member.
func (d *Directory) GetByName(name string) (staff.Staff, error) {
	m, ok := d.index[name]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return m, nil
}

// Add appends a new entry to the backing roster and the index.
func (d *Directory) Add(ctx context.Context, s staff.Staff) error {
	if _, exists := d.index[s.Name]; exists {
		return staff.ErrDuplicateStaff
	}
	if err := d.repo.Append(ctx, s); err != nil {
		return fmt.Errorf("failed to persist staff member %q: %w", s.Name, err)
	}
	d.index[s.Name] = s
	d.ordered = append(d.ordered, s.Name)
	return nil
}

// All returns the directory in load order.
func (d *Directory) All() []staff.Staff {
	members := make([]staff.Staff, 0, len(d.ordered))
	for _, name := range d.ordered {
		members = append(members, d.index[name])
	}
	return members
}

func (d *Directory) Len() int {
	return len(d.index)
}

// Counts returns the internal/external partition sizes.
func (d *Directory) Counts() (internal, external int) {
	for _, m := range d.index {
		if m.Regime == staff.RegimeExternal {
			external++
		} else {
			internal++
		}
	}
	return internal, external
}
