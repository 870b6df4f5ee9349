package records

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// MemoryRepository хранилище записей в памяти процесса
// Используется при storage.driver = "memory" и в тестах
type MemoryRepository struct {
	mu      sync.RWMutex
	records []domain.ClosedRecord
	nextID  int64
	now     func() time.Time
}

// NewMemoryRepository создает пустое хранилище в памяти
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1, now: time.Now}
}

// Append сохраняет запись о завершённой стоянке
func (m *MemoryRepository) Append(_ context.Context, record domain.ClosedRecord) (domain.ClosedRecord, error) {
	if err := validateRecord(record); err != nil {
		return domain.ClosedRecord{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	record.ID = m.nextID
	record.CreatedAt = m.now()
	m.nextID++
	m.records = append(m.records, record)

	return record, nil
}

// QueryByExitDate возвращает записи с временем выезда в [day, day+1 сутки)
func (m *MemoryRepository) QueryByExitDate(_ context.Context, day time.Time) ([]domain.ClosedRecord, error) {
	end := day.AddDate(0, 0, 1)

	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []domain.ClosedRecord
	for _, rec := range m.records {
		if !rec.ExitTime.Before(day) && rec.ExitTime.Before(end) {
			result = append(result, rec)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ExitTime.Before(result[j].ExitTime)
	})

	return result, nil
}

// Len возвращает количество сохранённых записей
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}
