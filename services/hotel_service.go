package services

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"langham-hms/models"
)

// HotelService is the front desk: it holds the room registry and allocation
// ledger and runs every operation on them under one lock, so a room seen as
// Available is always claimed atomically.
type HotelService struct {
	mu      sync.RWMutex
	rooms   *RoomRegistry
	ledger  *AllocationLedger
	archive BillArchive
	logger  *logrus.Logger
}

// NewHotelService wires the desk. archive may be nil.
func NewHotelService(rooms *RoomRegistry, ledger *AllocationLedger, archive BillArchive, logger *logrus.Logger) *HotelService {
	return &HotelService{
		rooms:   rooms,
		ledger:  ledger,
		archive: archive,
		logger:  logger,
	}
}

func (s *HotelService) AddRoom(in models.NewRoomInput) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.rooms.AddRoom(in)
	if err != nil {
		s.logger.WithError(err).WithField("room", in.Number).Debug("add room rejected")
		return room, err
	}
	s.logger.WithFields(logrus.Fields{
		"room":     room.Number,
		"type":     room.Type,
		"price":    room.Price,
		"capacity": room.Capacity,
	}).Info("room added")
	return room, nil
}

func (s *HotelService) RemoveRoom(number string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.rooms.RemoveRoom(number); err != nil {
		s.logger.WithError(err).WithField("room", number).Debug("remove room rejected")
		return err
	}
	s.logger.WithField("room", number).Info("room removed")
	return nil
}

// CheckNewRoom reports DuplicateKey for a taken room number.
func (s *HotelService) CheckNewRoom(number string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms.CheckNewRoom(number)
}

func (s *HotelService) FindRoom(number string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms.FindRoom(number)
}

func (s *HotelService) ListRooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms.ListRooms()
}

func (s *HotelService) ListAvailable() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rooms.ListAvailable()
}

// CheckAllocatable reports NotFound or InvalidState for the room. Allocate
// repeats the check under the write lock.
func (s *HotelService) CheckAllocatable(roomNumber string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, err := s.ledger.CheckAllocatable(roomNumber)
	return err
}

func (s *HotelService) Allocate(in models.NewAllocationInput) (models.Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alloc, err := s.ledger.Allocate(in)
	if err != nil {
		s.logger.WithError(err).WithField("room", in.RoomNumber).Debug("allocation rejected")
		return alloc, err
	}
	s.logger.WithFields(logrus.Fields{
		"room":       alloc.RoomNumber,
		"allocation": alloc.ID,
		"nights":     alloc.Nights,
		"total":      alloc.TotalCost,
	}).Info("room allocated")
	return alloc, nil
}

func (s *HotelService) FindActiveAllocation(roomNumber string) (models.Allocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.FindActiveAllocation(roomNumber)
}

func (s *HotelService) ListActive() []models.Allocation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ledger.ListActive()
}

// BillAndRelease releases the room and returns its bill. The bill is then
// archived outside the lock; an archive failure is logged only.
func (s *HotelService) BillAndRelease(ctx context.Context, roomNumber string) (models.Bill, error) {
	s.mu.Lock()
	bill, err := s.ledger.BillAndRelease(roomNumber)
	s.mu.Unlock()
	if err != nil {
		s.logger.WithError(err).WithField("room", roomNumber).Debug("billing rejected")
		return bill, err
	}

	entry := s.logger.WithFields(logrus.Fields{
		"room":  bill.RoomNumber,
		"bill":  bill.ID,
		"total": bill.TotalCost,
	})
	entry.Info("room billed and released")

	if s.archive != nil {
		if err := s.archive.Save(ctx, bill); err != nil {
			entry.WithError(err).Warn("bill archive failed")
		}
	}
	return bill, nil
}
