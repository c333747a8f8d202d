package models

import "langham-hms/apperror"

// RoomType is the closed set of room categories.
type RoomType string

const (
	RoomTypeSingle RoomType = "Single"
	RoomTypeDouble RoomType = "Double"
	RoomTypeSuite  RoomType = "Suite"
)

func (t RoomType) Valid() bool {
	switch t {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite:
		return true
	}
	return false
}

// ParseRoomType matches the exact, case-sensitive type name.
func ParseRoomType(s string) (RoomType, error) {
	t := RoomType(s)
	if !t.Valid() {
		return "", apperror.New(apperror.KindInvalidArgument, fieldMessages["Type"])
	}
	return t, nil
}

// RoomStatus is the occupancy state of a room.
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "Available"
	RoomStatusOccupied  RoomStatus = "Occupied"
)

type Room struct {
	Number   string     `json:"number"`
	Type     RoomType   `json:"type"`
	Price    float64    `json:"price"`
	Capacity int        `json:"capacity"`
	Status   RoomStatus `json:"status"`
}

// Available reports whether the room can be allocated.
func (r Room) Available() bool {
	return r.Status == RoomStatusAvailable
}
