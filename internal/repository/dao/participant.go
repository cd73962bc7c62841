package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrVersionConflict     = errors.New("participant was modified concurrently")
)

const (
	StatusPaid    = "PAID"
	StatusUnpaid  = "UNPAID"
	StatusPartial = "PARTIAL"
)

type Participant struct {
	ID            string          `gorm:"primaryKey;type:varchar(36)"`
	FullName      string          `gorm:"not null"`
	Phone         string          `gorm:"not null"`
	Age           string          `gorm:"not null"`
	Email         *string
	PaymentStatus string          `gorm:"type:varchar(16);not null;default:UNPAID"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaidAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	QRCode        string          `gorm:"column:qr_code"`
	CreatedBy     string          `gorm:"not null;default:system"`
	UpdatedBy     string          `gorm:"not null;default:system"`
	Version       int             `gorm:"not null;default:1"`
	RegisteredAt  time.Time       `gorm:"not null;index"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, p Participant) (Participant, error) {
	if p.Version == 0 {
		p.Version = 1
	}

	result := d.db.WithContext(ctx).Create(&p)
	if result.Error != nil {
		return Participant{}, result.Error
	}

	return p, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id string) (Participant, error) {
	return findParticipant(d.db.WithContext(ctx), id)
}

// FindAll lists participants, most recent registration first.
func (d *ParticipantDAO) FindAll(ctx context.Context) ([]Participant, error) {
	var participants []Participant

	result := d.db.WithContext(ctx).Order("registered_at DESC").Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

// Exists reports whether a participant row is present.
func (d *ParticipantDAO) Exists(ctx context.Context, id string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Participant{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// Update writes every mutable column of p if the stored version still equals
// expectedVersion, bumping the version by one.
func (d *ParticipantDAO) Update(ctx context.Context, p Participant, expectedVersion int) (Participant, error) {
	return compareAndSwap(d.db.WithContext(ctx), p, expectedVersion)
}

// UpdateWithHistory is Update plus one ledger row, committed together.
func (d *ParticipantDAO) UpdateWithHistory(ctx context.Context, p Participant, expectedVersion int, entry PaymentHistory) (Participant, error) {
	var updated Participant

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		updated, err = compareAndSwap(tx, p, expectedVersion)
		if err != nil {
			return err
		}

		entry.ParticipantID = updated.ID
		return insertHistory(tx, &entry)
	})
	if err != nil {
		return Participant{}, err
	}

	return updated, nil
}

func (d *ParticipantDAO) Delete(ctx context.Context, id string) error {
	result := d.db.WithContext(ctx).Delete(&Participant{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

func findParticipant(db *gorm.DB, id string) (Participant, error) {
	var p Participant

	result := db.First(&p, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return p, nil
}

func compareAndSwap(db *gorm.DB, p Participant, expectedVersion int) (Participant, error) {
	result := db.Model(&Participant{}).
		Where("id = ? AND version = ?", p.ID, expectedVersion).
		Updates(map[string]any{
			"full_name":      p.FullName,
			"phone":          p.Phone,
			"age":            p.Age,
			"email":          p.Email,
			"payment_status": p.PaymentStatus,
			"total_amount":   p.TotalAmount,
			"paid_amount":    p.PaidAmount,
			"qr_code":        p.QRCode,
			"updated_by":     p.UpdatedBy,
			"updated_at":     time.Now().UTC(),
			"version":        gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return Participant{}, result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := findParticipant(db, p.ID); err != nil {
			return Participant{}, err
		}

		return Participant{}, ErrVersionConflict
	}

	return findParticipant(db, p.ID)
}
