package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"langham-hms/apperror"
	"langham-hms/models"
)

// roomStore is the slice of RoomRegistry the ledger depends on.
type roomStore interface {
	FindRoom(number string) (models.Room, error)
	setStatus(number string, status models.RoomStatus) error
}

// AllocationLedger owns the active allocations and is the only writer of
// room status. Like RoomRegistry it relies on HotelService for locking.
type AllocationLedger struct {
	rooms  roomStore
	active []models.Allocation
	now    func() time.Time
}

func NewAllocationLedger(rooms *RoomRegistry) *AllocationLedger {
	return &AllocationLedger{rooms: rooms, now: time.Now}
}

// CheckAllocatable returns the room if it exists and is Available.
func (l *AllocationLedger) CheckAllocatable(roomNumber string) (models.Room, error) {
	room, err := l.rooms.FindRoom(strings.TrimSpace(roomNumber))
	if err != nil {
		return models.Room{}, err
	}
	if !room.Available() {
		return models.Room{}, apperror.New(apperror.KindInvalidState, fmt.Sprintf("Room %s is not available!", room.Number))
	}
	return room, nil
}

// Allocate books an Available room. Either the allocation is recorded and the
// room is Occupied, or neither changes.
func (l *AllocationLedger) Allocate(in models.NewAllocationInput) (models.Allocation, error) {
	room, err := l.CheckAllocatable(in.RoomNumber)
	if err != nil {
		return models.Allocation{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Allocation{}, err
	}

	alloc := models.Allocation{
		ID:           uuid.New(),
		RoomNumber:   room.Number,
		CustomerName: in.CustomerName,
		Nights:       in.Nights,
		CheckInDate:  in.CheckInDate,
		TotalCost:    room.Price * float64(in.Nights),
		AllocatedAt:  l.now(),
	}

	l.active = append(l.active, alloc)
	if err := l.rooms.setStatus(room.Number, models.RoomStatusOccupied); err != nil {
		l.active = l.active[:len(l.active)-1]
		return models.Allocation{}, err
	}
	return alloc, nil
}

// FindActiveAllocation returns the allocation holding roomNumber.
func (l *AllocationLedger) FindActiveAllocation(roomNumber string) (models.Allocation, error) {
	i := l.indexOf(roomNumber)
	if i < 0 {
		return models.Allocation{}, allocationNotFound(roomNumber)
	}
	return l.active[i], nil
}

// BillAndRelease snapshots the bill, drops the allocation and frees the room.
// If the room cannot be freed the allocation is put back where it was.
func (l *AllocationLedger) BillAndRelease(roomNumber string) (models.Bill, error) {
	i := l.indexOf(roomNumber)
	if i < 0 {
		return models.Bill{}, allocationNotFound(roomNumber)
	}
	alloc := l.active[i]
	bill := models.BillFor(alloc, l.now())

	l.active = append(l.active[:i], l.active[i+1:]...)
	if err := l.rooms.setStatus(roomNumber, models.RoomStatusAvailable); err != nil {
		l.active = append(l.active[:i], append([]models.Allocation{alloc}, l.active[i:]...)...)
		return models.Bill{}, err
	}
	return bill, nil
}

// ListActive returns active allocations in the order they were made.
func (l *AllocationLedger) ListActive() []models.Allocation {
	out := make([]models.Allocation, len(l.active))
	copy(out, l.active)
	return out
}

func (l *AllocationLedger) size() int {
	return len(l.active)
}

func (l *AllocationLedger) indexOf(roomNumber string) int {
	for i, a := range l.active {
		if a.RoomNumber == roomNumber {
			return i
		}
	}
	return -1
}

func allocationNotFound(roomNumber string) error {
	return apperror.New(apperror.KindNotFound, fmt.Sprintf("No allocation found for room %s!", roomNumber))
}
