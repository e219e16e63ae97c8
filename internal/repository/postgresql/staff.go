package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
	"github.com/cmlabs-hris/attendance-report-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepositoryImpl{db: db}
}

// LoadAll implements staff.Repository.
func (r *staffRepositoryImpl) LoadAll(ctx context.Context) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT name, regime, work_weekdays
		FROM staff_members
		WHERE deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff roster: %w", err)
	}
	defer rows.Close()

	var members []staff.Staff
	for rows.Next() {
		var (
			name     string
			regime   string
			weekdays []int32
		)
		if err := rows.Scan(&name, &regime, &weekdays); err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}

		workWeekdays := make([]time.Weekday, 0, len(weekdays))
		for _, w := range weekdays {
			workWeekdays = append(workWeekdays, time.Weekday(w))
		}
		members = append(members, staff.NewStaff(name, staff.Regime(regime), workWeekdays...))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read staff roster: %w", err)
	}

	return members, nil
}

// Append implements staff.Repository.
func (r *staffRepositoryImpl) Append(ctx context.Context, s staff.Staff) error {
	q := GetQuerier(ctx, r.db)

	weekdays := make([]int32, 0, len(s.WorkWeekdays))
	for _, w := range s.WorkWeekdays {
		weekdays = append(weekdays, int32(w))
	}

	query := `
		INSERT INTO staff_members (id, name, regime, work_weekdays, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	var insertedID string
	err := q.QueryRow(ctx, query, s.Name, string(s.Regime), weekdays).Scan(&insertedID)
	if err != nil {
		return fmt.Errorf("failed to append staff member %q: %w", s.Name, err)
	}

	return nil
}
