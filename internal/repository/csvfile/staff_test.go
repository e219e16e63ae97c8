package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staff.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStaffRepository_LoadAll(t *testing.T) {
	ctx := context.Background()
	path := writeRoster(t, "Name,Type\n王小明,內勤\n李大仁,外勤\n陳美麗,\n")

	repo := NewStaffRepository(path)
	members, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, members, 3)

	assert.Equal(t, "王小明", members[0].Name)
	assert.Equal(t, staff.RegimeInternal, members[0].Regime)
	assert.Equal(t, staff.RegimeExternal, members[1].Regime)
	// blank type defaults to internal
	assert.Equal(t, staff.RegimeInternal, members[2].Regime)
}

func TestStaffRepository_LoadAll_HeaderAliases(t *testing.T) {
	ctx := context.Background()
	path := writeRoster(t, "姓名,類別\n張三,external\n")

	repo := NewStaffRepository(path)
	members, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "張三", members[0].Name)
	assert.Equal(t, staff.RegimeExternal, members[0].Regime)
}

func TestStaffRepository_LoadAll_BOM(t *testing.T) {
	ctx := context.Background()
	path := writeRoster(t, "\uFEFFName,Type\n王小明,內勤\n")

	repo := NewStaffRepository(path)
	members, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "王小明", members[0].Name)
}

func TestStaffRepository_LoadAll_MissingFile(t *testing.T) {
	ctx := context.Background()
	repo := NewStaffRepository(filepath.Join(t.TempDir(), "nope.csv"))

	members, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestStaffRepository_LoadAll_SkipsBlankNames(t *testing.T) {
	ctx := context.Background()
	path := writeRoster(t, "Name,Type\n,內勤\n  ,外勤\n王小明,內勤\n")

	repo := NewStaffRepository(path)
	members, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestStaffRepository_Append_NewFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "staff.csv")
	repo := NewStaffRepository(path)

	require.NoError(t, repo.Append(ctx, staff.NewStaff("王小明", staff.RegimeExternal)))

	members, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "王小明", members[0].Name)
	assert.Equal(t, staff.RegimeExternal, members[0].Regime)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday, time.Friday}, members[0].WorkWeekdays)
}

func TestStaffRepository_Append_ExistingFile(t *testing.T) {
	ctx := context.Background()
	path := writeRoster(t, "Name,Type\n王小明,內勤\n")
	repo := NewStaffRepository(path)

	require.NoError(t, repo.Append(ctx, staff.NewStaff("李大仁", staff.RegimeExternal)))

	members, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "李大仁", members[1].Name)

	// no second header line
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, countOccurrences(string(content), "Name,Type"))
}

func countOccurrences(s, substr string) int {
	count := 0
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			count++
		}
	}
	return count
}
