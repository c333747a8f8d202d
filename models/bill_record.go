package models

import (
	"time"

	"gorm.io/datatypes"
)

// BillRecord is the archived form of a Bill. Rows are written once and never
// loaded back into the desk.
type BillRecord struct {
	ID           string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	SessionID    string         `gorm:"column:session_id;index;type:varchar(64)" json:"sessionId"`
	RoomNumber   string         `gorm:"column:room_number;index;type:varchar(50)" json:"roomNumber"`
	CustomerName string         `gorm:"column:customer_name;type:varchar(255)" json:"customerName"`
	CheckInDate  datatypes.Date `gorm:"column:check_in_date" json:"checkInDate"`
	Nights       int            `gorm:"column:nights" json:"nights"`
	TotalCost    float64        `gorm:"column:total_cost;type:decimal(12,2)" json:"totalCost"`
	GeneratedAt  time.Time      `gorm:"column:generated_at" json:"generatedAt"`
	CreatedAt    time.Time
}

func (BillRecord) TableName() string {
	return "bill_records"
}

// NewBillRecord converts b for the archive. checkIn is b.CheckInDate parsed as a date.
func NewBillRecord(sessionID string, b Bill, checkIn time.Time) BillRecord {
	return BillRecord{
		ID:           b.ID.String(),
		SessionID:    sessionID,
		RoomNumber:   b.RoomNumber,
		CustomerName: b.CustomerName,
		CheckInDate:  datatypes.Date(checkIn),
		Nights:       b.Nights,
		TotalCost:    b.TotalCost,
		GeneratedAt:  b.GeneratedAt,
	}
}
