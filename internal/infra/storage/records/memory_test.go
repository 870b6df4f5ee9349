package records

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func closedAt(number string, exit time.Time, fee float64) domain.ClosedRecord {
	return domain.ClosedRecord{
		VehicleNumber: number,
		VehicleType:   domain.VehicleCar,
		Slot:          1,
		EntryTime:     exit.Add(-time.Hour),
		ExitTime:      exit,
		Fee:           fee,
	}
}

func TestMemoryRepository_AppendAssignsIDs(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	exit := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	first, err := repo.Append(ctx, closedAt("A1", exit, 20))
	require.NoError(t, err)
	second, err := repo.Append(ctx, closedAt("B1", exit, 30))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, 2, repo.Len())
}

func TestMemoryRepository_AppendRejectsInvalid(t *testing.T) {
	repo := NewMemoryRepository()
	exit := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		record domain.ClosedRecord
	}{
		{name: "empty number", record: closedAt(" ", exit, 20)},
		{name: "number too long", record: closedAt(strings.Repeat("X", domain.MaxVehicleNumberLength+1), exit, 20)},
		{name: "negative fee", record: closedAt("A1", exit, -1)},
		{
			name: "exit before entry",
			record: domain.ClosedRecord{
				VehicleNumber: "A1", Slot: 1,
				EntryTime: exit, ExitTime: exit.Add(-time.Second),
			},
		},
		{
			name:   "zero slot",
			record: domain.ClosedRecord{VehicleNumber: "A1", EntryTime: exit, ExitTime: exit},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Append(context.Background(), tt.record)
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
	assert.Zero(t, repo.Len())
}

func TestMemoryRepository_QueryByExitDate(t *testing.T) {
	zone := time.FixedZone("IST", 5*3600+1800)
	repo := NewMemoryRepository()
	ctx := context.Background()
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, zone)

	_, err := repo.Append(ctx, closedAt("LATE", day.Add(23*time.Hour+59*time.Minute), 30))
	require.NoError(t, err)
	_, err = repo.Append(ctx, closedAt("MIDNIGHT", day, 20))
	require.NoError(t, err)
	_, err = repo.Append(ctx, closedAt("NEXTDAY", day.AddDate(0, 0, 1), 40))
	require.NoError(t, err)
	_, err = repo.Append(ctx, closedAt("PREV", day.Add(-time.Second), 50))
	require.NoError(t, err)
	// 20:00 UTC 9 марта = 01:30 IST 10 марта
	_, err = repo.Append(ctx, closedAt("UTC", time.Date(2024, 3, 9, 20, 0, 0, 0, time.UTC), 25))
	require.NoError(t, err)

	got, err := repo.QueryByExitDate(ctx, day)
	require.NoError(t, err)

	numbers := make([]string, 0, len(got))
	for _, r := range got {
		numbers = append(numbers, r.VehicleNumber)
	}
	assert.Equal(t, []string{"MIDNIGHT", "UTC", "LATE"}, numbers)
}

func TestMemoryRepository_QueryEmptyDay(t *testing.T) {
	repo := NewMemoryRepository()

	got, err := repo.QueryByExitDate(context.Background(), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, got)
}
