package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentHistory rows are only ever inserted. participant_id carries no
// foreign key so entries outlive the participant.
type PaymentHistory struct {
	ID                  string          `gorm:"primaryKey;type:varchar(36)"`
	ParticipantID       string          `gorm:"type:varchar(36);not null;index"`
	PreviousPaidAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NewPaidAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PreviousTotalAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NewTotalAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PreviousStatus      string          `gorm:"type:varchar(16);not null"`
	NewStatus           string          `gorm:"type:varchar(16);not null"`
	UpdatedBy           string          `gorm:"not null"`
	CreatedAt           time.Time       `gorm:"not null"`
}

type PaymentHistoryDAO struct {
	db *gorm.DB
}

func NewPaymentHistoryDAO(db *gorm.DB) *PaymentHistoryDAO {
	return &PaymentHistoryDAO{
		db: db,
	}
}

// FindByParticipantID returns the ledger for one participant, newest first.
func (d *PaymentHistoryDAO) FindByParticipantID(ctx context.Context, participantID string) ([]PaymentHistory, error) {
	var entries []PaymentHistory

	result := d.db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Order("created_at DESC").
		Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	return entries, nil
}

func insertHistory(db *gorm.DB, entry *PaymentHistory) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	return db.Create(entry).Error
}
