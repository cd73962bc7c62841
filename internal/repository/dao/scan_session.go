package dao

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScanSession struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)"`
	ParticipantID string    `gorm:"type:varchar(36);not null;index"`
	ScannedBy     *string
	DeviceInfo    *string
	ResolvedVia   string    `gorm:"type:varchar(8);not null"`
	ScannedAt     time.Time `gorm:"not null"`
}

type ScanSessionDAO struct {
	db *gorm.DB
}

func NewScanSessionDAO(db *gorm.DB) *ScanSessionDAO {
	return &ScanSessionDAO{
		db: db,
	}
}

func (d *ScanSessionDAO) Insert(ctx context.Context, s ScanSession) (ScanSession, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.ScannedAt.IsZero() {
		s.ScannedAt = time.Now().UTC()
	}

	result := d.db.WithContext(ctx).Create(&s)
	if result.Error != nil {
		return ScanSession{}, result.Error
	}

	return s, nil
}

func (d *ScanSessionDAO) CountByParticipantID(ctx context.Context, participantID string) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&ScanSession{}).Where("participant_id = ?", participantID).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
