package services

import (
	"fmt"
	"strings"

	"langham-hms/apperror"
	"langham-hms/models"
)

// RoomRegistry owns the set of rooms. It is not safe for concurrent use on
// its own; HotelService serialises access.
type RoomRegistry struct {
	rooms    []*models.Room
	byNumber map[string]*models.Room
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{byNumber: map[string]*models.Room{}}
}

// CheckNewRoom reports whether number is free to register.
func (r *RoomRegistry) CheckNewRoom(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return apperror.New(apperror.KindInvalidArgument, "Room number cannot be empty!")
	}
	if _, exists := r.byNumber[number]; exists {
		return apperror.New(apperror.KindDuplicateKey, fmt.Sprintf("Room %s already exists!", number))
	}
	return nil
}

// AddRoom registers a new Available room. A taken number is reported before
// any other field is looked at.
func (r *RoomRegistry) AddRoom(in models.NewRoomInput) (models.Room, error) {
	in.Number = strings.TrimSpace(in.Number)
	if err := r.CheckNewRoom(in.Number); err != nil {
		return models.Room{}, err
	}
	if err := in.Validate(); err != nil {
		return models.Room{}, err
	}
	typ, err := models.ParseRoomType(in.Type)
	if err != nil {
		return models.Room{}, err
	}

	room := &models.Room{
		Number:   in.Number,
		Type:     typ,
		Price:    in.Price,
		Capacity: in.Capacity,
		Status:   models.RoomStatusAvailable,
	}
	r.rooms = append(r.rooms, room)
	r.byNumber[room.Number] = room
	return *room, nil
}

// RemoveRoom deletes an Available room permanently.
func (r *RoomRegistry) RemoveRoom(number string) error {
	room, ok := r.byNumber[number]
	if !ok {
		return roomNotFound(number)
	}
	if room.Status == models.RoomStatusOccupied {
		return apperror.New(apperror.KindInvalidState, "Cannot delete occupied room! Please de-allocate first.")
	}

	delete(r.byNumber, number)
	for i, rm := range r.rooms {
		if rm == room {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
			break
		}
	}
	return nil
}

// FindRoom returns a copy of the room.
func (r *RoomRegistry) FindRoom(number string) (models.Room, error) {
	room, ok := r.byNumber[number]
	if !ok {
		return models.Room{}, roomNotFound(number)
	}
	return *room, nil
}

// ListRooms returns every room in insertion order.
func (r *RoomRegistry) ListRooms() []models.Room {
	out := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, *room)
	}
	return out
}

// ListAvailable returns Available rooms in insertion order.
func (r *RoomRegistry) ListAvailable() []models.Room {
	out := []models.Room{}
	for _, room := range r.rooms {
		if room.Available() {
			out = append(out, *room)
		}
	}
	return out
}

func (r *RoomRegistry) size() int {
	return len(r.rooms)
}

// setStatus is reserved for AllocationLedger.
func (r *RoomRegistry) setStatus(number string, status models.RoomStatus) error {
	room, ok := r.byNumber[number]
	if !ok {
		return roomNotFound(number)
	}
	room.Status = status
	return nil
}

func roomNotFound(number string) error {
	return apperror.New(apperror.KindNotFound, fmt.Sprintf("Room %s not found!", number))
}
