package models

import (
	"time"

	"github.com/google/uuid"
)

// Allocation binds one room to one customer for a fixed number of nights.
// RoomNumber is a copy of the room's key, never a pointer to the Room.
type Allocation struct {
	ID           uuid.UUID `json:"id"`
	RoomNumber   string    `json:"roomNumber"`
	CustomerName string    `json:"customerName"`
	Nights       int       `json:"nights"`
	CheckInDate  string    `json:"checkInDate"`
	TotalCost    float64   `json:"totalCost"`
	AllocatedAt  time.Time `json:"allocatedAt"`
}

// Bill is the point-in-time summary produced when an allocation is released.
type Bill struct {
	ID           uuid.UUID `json:"id"`
	RoomNumber   string    `json:"roomNumber"`
	CustomerName string    `json:"customerName"`
	CheckInDate  string    `json:"checkInDate"`
	Nights       int       `json:"nights"`
	TotalCost    float64   `json:"totalCost"`
	GeneratedAt  time.Time `json:"generatedAt"`
}

// BillFor snapshots a.
func BillFor(a Allocation, now time.Time) Bill {
	return Bill{
		ID:           uuid.New(),
		RoomNumber:   a.RoomNumber,
		CustomerName: a.CustomerName,
		CheckInDate:  a.CheckInDate,
		Nights:       a.Nights,
		TotalCost:    a.TotalCost,
		GeneratedAt:  now,
	}
}
