package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"langham-hms/models"
)

// BillArchive keeps a write-only history of issued bills.
type BillArchive interface {
	Save(ctx context.Context, bill models.Bill) error
}

// GormBillArchive writes bills to the bill_records table.
type GormBillArchive struct {
	DB        *gorm.DB
	SessionID string
}

func NewGormBillArchive(db *gorm.DB, sessionID string) *GormBillArchive {
	return &GormBillArchive{DB: db, SessionID: sessionID}
}

func (a *GormBillArchive) Save(ctx context.Context, bill models.Bill) error {
	checkIn, err := models.ParseDate(bill.CheckInDate)
	if err != nil {
		return fmt.Errorf("parse check-in date %q: %w", bill.CheckInDate, err)
	}
	rec := models.NewBillRecord(a.SessionID, bill, checkIn)
	if err := a.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to archive bill %s: %w", rec.ID, err)
	}
	return nil
}

// CountForSession reports how many bills were archived under sessionID.
func (a *GormBillArchive) CountForSession(ctx context.Context) (int64, error) {
	var n int64
	err := a.DB.WithContext(ctx).Model(&models.BillRecord{}).Where("session_id = ?", a.SessionID).Count(&n).Error
	return n, err
}
