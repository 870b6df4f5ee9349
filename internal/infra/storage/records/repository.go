package records

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

const tableName = "parking_records"

var recordColumns = []string{
	"id",
	"vehicle_number",
	"vehicle_type",
	"slot",
	"entry_time",
	"exit_time",
	"fee",
	"duration_seconds",
	"charged_hours",
	"extra_hours",
	"multiplier",
	"created_at",
}

// Repository хранилище завершённых стоянок в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append сохраняет запись о завершённой стоянке
// Записи только добавляются и никогда не изменяются
func (r *Repository) Append(ctx context.Context, record domain.ClosedRecord) (domain.ClosedRecord, error) {
	if err := validateRecord(record); err != nil {
		return domain.ClosedRecord{}, err
	}

	query, args, err := buildInsertQuery(record)
	if err != nil {
		return domain.ClosedRecord{}, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &createdAt)
	if err != nil {
		return domain.ClosedRecord{}, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	return record, nil
}

// QueryByExitDate возвращает записи с временем выезда в [day, day+1 сутки)
// Результат упорядочен по времени выезда
func (r *Repository) QueryByExitDate(ctx context.Context, day time.Time) ([]domain.ClosedRecord, error) {
	query, args, err := buildSelectByExitRangeQuery(day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: QueryByExitDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: QueryByExitDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []domain.ClosedRecord
	for rows.Next() {
		var (
			rec         domain.ClosedRecord
			vehicleType string
			createdAt   sql.NullTime
		)

		err = rows.Scan(
			&rec.ID,
			&rec.VehicleNumber,
			&vehicleType,
			&rec.Slot,
			&rec.EntryTime,
			&rec.ExitTime,
			&rec.Fee,
			&rec.DurationSeconds,
			&rec.ChargedHours,
			&rec.ExtraHours,
			&rec.Multiplier,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: QueryByExitDate - scan row: %v", ErrScanRow, err)
		}

		rec.VehicleType = domain.VehicleType(vehicleType)
		rec.EntryTime = rec.EntryTime.In(day.Location())
		rec.ExitTime = rec.ExitTime.In(day.Location())
		rec.CreatedAt = createdAt.Time
		result = append(result, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: QueryByExitDate - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

func buildInsertQuery(record domain.ClosedRecord) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(
			"vehicle_number",
			"vehicle_type",
			"slot",
			"entry_time",
			"exit_time",
			"fee",
			"duration_seconds",
			"charged_hours",
			"extra_hours",
			"multiplier",
		).
		Values(
			record.VehicleNumber,
			string(record.VehicleType),
			record.Slot,
			record.EntryTime,
			record.ExitTime,
			record.Fee,
			record.DurationSeconds,
			record.ChargedHours,
			record.ExtraHours,
			record.Multiplier,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

func buildSelectByExitRangeQuery(from, to time.Time) (string, []interface{}, error) {
	return psqlbuilder.Select(recordColumns...).
		From(tableName).
		Where(squirrel.GtOrEq{"exit_time": from}).
		Where(squirrel.Lt{"exit_time": to}).
		OrderBy("exit_time ASC", "id ASC").
		ToSql()
}

func validateRecord(record domain.ClosedRecord) error {
	switch {
	case strings.TrimSpace(record.VehicleNumber) == "":
		return fmt.Errorf("%w: empty vehicle number", ErrInvalidRecord)
	case utf8.RuneCountInString(record.VehicleNumber) > domain.MaxVehicleNumberLength:
		return fmt.Errorf("%w: vehicle number longer than %d characters", ErrInvalidRecord, domain.MaxVehicleNumberLength)
	case record.Slot <= 0:
		return fmt.Errorf("%w: slot %d", ErrInvalidRecord, record.Slot)
	case record.ExitTime.Before(record.EntryTime):
		return fmt.Errorf("%w: exit before entry", ErrInvalidRecord)
	case record.Fee < 0:
		return fmt.Errorf("%w: negative fee", ErrInvalidRecord)
	}
	return nil
}
