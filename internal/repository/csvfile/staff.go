// Package csvfile implements the staff roster repository over a plain
// CSV file, the format the attendance operators maintain by hand.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
)

var (
	nameAliases = []string{"Name", "name", "姓名"}
	typeAliases = []string{"Type", "type", "類型", "類別"}
)

type staffRepositoryImpl struct {
	path string
}

func NewStaffRepository(path string) staff.Repository {
	return &staffRepositoryImpl{path: path}
}

// LoadAll implements staff.Repository. A missing roster file is an
// empty roster, not an error.
func (r *staffRepositoryImpl) LoadAll(ctx context.Context) ([]staff.Staff, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open roster %s: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read roster header: %w", err)
	}

	nameCol := findColumn(header, nameAliases)
	typeCol := findColumn(header, typeAliases)
	if nameCol < 0 {
		return nil, fmt.Errorf("roster %s has no recognizable name column", r.path)
	}

	var members []staff.Staff
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster row: %w", err)
		}

		name := ""
		if nameCol < len(record) {
			name = strings.TrimSpace(record[nameCol])
		}
		if name == "" {
			continue
		}

		typeLabel := ""
		if typeCol >= 0 && typeCol < len(record) {
			typeLabel = record[typeCol]
		}

		members = append(members, staff.NewStaff(name, staff.ParseRegime(typeLabel)))
	}

	return members, nil
}

// Append implements staff.Repository. Writes a header first when the
// file is new or empty, and stores the native roster vocabulary.
func (r *staffRepositoryImpl) Append(ctx context.Context, s staff.Staff) error {
	needHeader := true
	if info, err := os.Stat(r.path); err == nil && info.Size() > 0 {
		needHeader = false
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open roster %s for append: %w", r.path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if needHeader {
		if err := writer.Write([]string{"Name", "Type"}); err != nil {
			return fmt.Errorf("failed to write roster header: %w", err)
		}
	}
	if err := writer.Write([]string{s.Name, s.Regime.Label()}); err != nil {
		return fmt.Errorf("failed to append staff member %q: %w", s.Name, err)
	}
	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush roster append: %w", err)
	}

	return nil
}

// findColumn matches a header cell against the alias list, tolerating
// a UTF-8 BOM on the first cell.
func findColumn(header []string, aliases []string) int {
	for i, cell := range header {
		cell = strings.TrimSpace(strings.TrimPrefix(cell, "\uFEFF"))
		for _, alias := range aliases {
			if cell == alias {
				return i
			}
		}
	}
	return -1
}
