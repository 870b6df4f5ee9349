package slots

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Registry хранит текущую занятость пронумерованных мест парковки
// Не потокобезопасен: синхронизацию обеспечивает вызывающий сервис
type Registry struct {
	total    int
	slots    []*domain.Stay // slots[i] - место с номером i+1, nil - свободно
	vipSlots []int
	isVIP    map[int]bool
}

// NewRegistry создает реестр на total мест с фиксированным набором VIP мест
func NewRegistry(total int, vipSlots []int) (*Registry, error) {
	if total <= 0 {
		return nil, ErrInvalidCapacity
	}

	isVIP := make(map[int]bool, len(vipSlots))
	vip := make([]int, 0, len(vipSlots))
	for _, s := range vipSlots {
		if s < 1 || s > total {
			return nil, fmt.Errorf("%w: vip slot %d, total %d", ErrSlotOutOfRange, s, total)
		}
		if isVIP[s] {
			continue
		}
		isVIP[s] = true
		vip = append(vip, s)
	}
	sort.Ints(vip)

	return &Registry{
		total:    total,
		slots:    make([]*domain.Stay, total),
		vipSlots: vip,
		isVIP:    isVIP,
	}, nil
}

// Total возвращает общее количество мест
func (r *Registry) Total() int {
	return r.total
}

// IsVIP возвращает true для VIP места
func (r *Registry) IsVIP(slot int) bool {
	return r.isVIP[slot]
}

// VIPSlots возвращает номера VIP мест по возрастанию
func (r *Registry) VIPSlots() []int {
	out := make([]int, len(r.vipSlots))
	copy(out, r.vipSlots)
	return out
}

// FindSlotFor ищет место, занятое ТС с указанным номером
func (r *Registry) FindSlotFor(vehicleNumber string) (int, bool) {
	for i, stay := range r.slots {
		if stay != nil && stay.VehicleNumber == vehicleNumber {
			return i + 1, true
		}
	}
	return 0, false
}

// Get возвращает стоянку на месте, если оно занято
func (r *Registry) Get(slot int) (domain.Stay, bool) {
	if slot < 1 || slot > r.total || r.slots[slot-1] == nil {
		return domain.Stay{}, false
	}
	return *r.slots[slot-1], true
}

// NextFreeSlot возвращает первое свободное место
// При preferVIP сначала просматриваются VIP места, затем все места по возрастанию.
// false означает, что парковка заполнена
func (r *Registry) NextFreeSlot(preferVIP bool) (int, bool) {
	if preferVIP {
		for _, s := range r.vipSlots {
			if r.slots[s-1] == nil {
				return s, true
			}
		}
	}

	for i, stay := range r.slots {
		if stay == nil {
			return i + 1, true
		}
	}
	return 0, false
}

// Occupy закрепляет стоянку за свободным местом
func (r *Registry) Occupy(slot int, stay domain.Stay) error {
	if slot < 1 || slot > r.total {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	if r.slots[slot-1] != nil {
		return fmt.Errorf("%w: %d", ErrSlotOccupied, slot)
	}

	stay.Slot = slot
	r.slots[slot-1] = &stay
	return nil
}

// Vacate освобождает место и возвращает стоявшую на нём стоянку
func (r *Registry) Vacate(slot int) (domain.Stay, error) {
	if slot < 1 || slot > r.total {
		return domain.Stay{}, fmt.Errorf("%w: %d", ErrSlotOutOfRange, slot)
	}
	stay := r.slots[slot-1]
	if stay == nil {
		return domain.Stay{}, fmt.Errorf("%w: %d", ErrSlotEmpty, slot)
	}

	r.slots[slot-1] = nil
	return *stay, nil
}

// AllOccupied возвращает активные стоянки в порядке возрастания номера места
func (r *Registry) AllOccupied() []domain.Stay {
	occupied := make([]domain.Stay, 0, r.total)
	for _, stay := range r.slots {
		if stay != nil {
			occupied = append(occupied, *stay)
		}
	}
	return occupied
}

// OccupiedCount возвращает количество занятых мест
func (r *Registry) OccupiedCount() int {
	count := 0
	for _, stay := range r.slots {
		if stay != nil {
			count++
		}
	}
	return count
}

// FreeSlots возвращает номера свободных мест по возрастанию
func (r *Registry) FreeSlots() []int {
	free := make([]int, 0, r.total)
	for i, stay := range r.slots {
		if stay == nil {
			free = append(free, i+1)
		}
	}
	return free
}
