package models

import (
	"strconv"
	"strings"

	"langham-hms/apperror"
)

// RoomForm is the raw text entered for a new room.
type RoomForm struct {
	Number   string
	Type     string
	Price    string
	Capacity string
}

// Input converts the form field by field in entry order and stops at the
// first bad field. The room number is checked by the registry, not here.
func (f RoomForm) Input() (NewRoomInput, error) {
	in := NewRoomInput{Number: strings.TrimSpace(f.Number)}

	typ, err := ParseRoomType(strings.TrimSpace(f.Type))
	if err != nil {
		return NewRoomInput{}, err
	}
	in.Type = string(typ)

	if in.Price, err = parseFloatField(f.Price, "Price"); err != nil {
		return NewRoomInput{}, err
	}
	if in.Price <= 0 {
		return NewRoomInput{}, invalid("Price")
	}

	if in.Capacity, err = parseIntField(f.Capacity, "Capacity"); err != nil {
		return NewRoomInput{}, err
	}
	if in.Capacity <= 0 {
		return NewRoomInput{}, invalid("Capacity")
	}
	return in, nil
}

// AllocationForm is the raw text entered for an allocation.
type AllocationForm struct {
	RoomNumber   string
	CustomerName string
	Nights       string
	CheckInDate  string
}

// Input converts the form in entry order. Room existence and availability
// are checked by the ledger before this runs.
func (f AllocationForm) Input() (NewAllocationInput, error) {
	in := NewAllocationInput{
		RoomNumber:   strings.TrimSpace(f.RoomNumber),
		CustomerName: strings.TrimSpace(f.CustomerName),
		CheckInDate:  strings.TrimSpace(f.CheckInDate),
	}
	if in.CustomerName == "" {
		return NewAllocationInput{}, invalid("CustomerName")
	}

	var err error
	if in.Nights, err = parseIntField(f.Nights, "Number of nights"); err != nil {
		return NewAllocationInput{}, err
	}
	if in.Nights <= 0 {
		return NewAllocationInput{}, invalid("Nights")
	}

	if _, err := ParseDate(in.CheckInDate); err != nil {
		return NewAllocationInput{}, invalid("CheckInDate")
	}
	return in, nil
}

func invalid(field string) error {
	return apperror.New(apperror.KindInvalidArgument, fieldMessages[field])
}

func parseFloatField(s, label string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperror.New(apperror.KindInvalidArgument, label+" cannot be empty!")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, apperror.New(apperror.KindInvalidArgument, label+" must be a number!")
	}
	return v, nil
}

func parseIntField(s, label string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperror.New(apperror.KindInvalidArgument, label+" cannot be empty!")
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperror.New(apperror.KindInvalidArgument, label+" must be a whole number!")
	}
	return v, nil
}
