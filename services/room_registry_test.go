package services

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"langham-hms/apperror"
	"langham-hms/models"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func roomInput(number, typ string, price float64, capacity int) models.NewRoomInput {
	return models.NewRoomInput{Number: number, Type: typ, Price: price, Capacity: capacity}
}

func TestAddRoomThenFindRoomRoundTrip(t *testing.T) {
	reg := NewRoomRegistry()

	added, err := reg.AddRoom(roomInput("101", "Double", 120.5, 2))
	if err != nil {
		t.Fatalf("add room: %v", err)
	}
	found, err := reg.FindRoom("101")
	if err != nil {
		t.Fatalf("find room: %v", err)
	}
	if found != added {
		t.Fatalf("expected %+v, got %+v", added, found)
	}
	want := models.Room{Number: "101", Type: models.RoomTypeDouble, Price: 120.5, Capacity: 2, Status: models.RoomStatusAvailable}
	if found != want {
		t.Fatalf("expected %+v, got %+v", want, found)
	}
}

func TestAddRoomRejectsDuplicate(t *testing.T) {
	reg := NewRoomRegistry()
	if _, err := reg.AddRoom(roomInput("101", "Single", 100, 1)); err != nil {
		t.Fatalf("add room: %v", err)
	}

	tests := []struct {
		name string
		in   models.NewRoomInput
	}{
		{"valid fields", roomInput("101", "Suite", 300, 4)},
		{"padded number", roomInput(" 101 ", "Suite", 300, 4)},
		{"invalid type", roomInput("101", "Twin", 100, 1)},
		{"invalid price and capacity", roomInput("101", "Single", 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.AddRoom(tt.in)
			if !errors.Is(err, apperror.ErrDuplicateKey) {
				t.Fatalf("expected duplicate key, got %v", err)
			}
			if err.Error() != "Room 101 already exists!" {
				t.Fatalf("unexpected message %q", err.Error())
			}
		})
	}
	room, _ := reg.FindRoom("101")
	if room.Type != models.RoomTypeSingle {
		t.Fatalf("expected original room untouched, got %+v", room)
	}
}

func TestAddRoomRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   models.NewRoomInput
	}{
		{"type", roomInput("101", "Twin", 100, 1)},
		{"price", roomInput("101", "Single", 0, 1)},
		{"capacity", roomInput("101", "Single", 100, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRoomRegistry()
			_, err := reg.AddRoom(tt.in)
			if apperror.KindOf(err) != apperror.KindInvalidArgument {
				t.Fatalf("expected invalid argument, got %v", err)
			}
			if reg.size() != 0 {
				t.Fatalf("expected empty registry, got %d rooms", reg.size())
			}
		})
	}
}

func TestRemoveRoom(t *testing.T) {
	reg := NewRoomRegistry()
	reg.AddRoom(roomInput("101", "Single", 100, 1))
	reg.AddRoom(roomInput("102", "Double", 150, 2))

	if err := reg.RemoveRoom("101"); err != nil {
		t.Fatalf("remove room: %v", err)
	}
	if _, err := reg.FindRoom("101"); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found after removal, got %v", err)
	}
	if err := reg.RemoveRoom("101"); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found on second removal, got %v", err)
	}
	rooms := reg.ListRooms()
	if len(rooms) != 1 || rooms[0].Number != "102" {
		t.Fatalf("unexpected rooms %+v", rooms)
	}
}

func TestRemoveOccupiedRoomFails(t *testing.T) {
	reg := NewRoomRegistry()
	reg.AddRoom(roomInput("101", "Single", 100, 1))
	if err := reg.setStatus("101", models.RoomStatusOccupied); err != nil {
		t.Fatalf("set status: %v", err)
	}

	err := reg.RemoveRoom("101")
	if !errors.Is(err, apperror.ErrInvalidState) {
		t.Fatalf("expected invalid state, got %v", err)
	}
	room, err := reg.FindRoom("101")
	if err != nil || room.Status != models.RoomStatusOccupied {
		t.Fatalf("expected room to remain occupied, got %+v, %v", room, err)
	}
}

func TestListAvailableKeepsInsertionOrder(t *testing.T) {
	reg := NewRoomRegistry()
	for _, n := range []string{"305", "101", "204", "110"} {
		if _, err := reg.AddRoom(roomInput(n, "Suite", 250, 3)); err != nil {
			t.Fatalf("add %s: %v", n, err)
		}
	}
	reg.setStatus("101", models.RoomStatusOccupied)

	got := reg.ListAvailable()
	want := []string{"305", "204", "110"}
	if len(got) != len(want) {
		t.Fatalf("expected %d rooms, got %d", len(want), len(got))
	}
	for i, r := range got {
		if r.Number != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], r.Number)
		}
	}

	got[0].Status = models.RoomStatusOccupied
	if room, _ := reg.FindRoom("305"); room.Status != models.RoomStatusAvailable {
		t.Fatal("expected listing to return copies")
	}
}

func TestSetStatusUnknownRoom(t *testing.T) {
	reg := NewRoomRegistry()
	if err := reg.setStatus("999", models.RoomStatusOccupied); !errors.Is(err, apperror.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
