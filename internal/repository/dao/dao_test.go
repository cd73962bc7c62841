package dao

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func createTestParticipant(t *testing.T, d *ParticipantDAO, paid, total int64) Participant {
	t.Helper()

	now := time.Now().UTC()
	p, err := d.Insert(context.Background(), Participant{
		ID:            uuid.New().String(),
		FullName:      "Ana Pérez",
		Phone:         "+34600000000",
		Age:           "31",
		PaymentStatus: StatusUnpaid,
		TotalAmount:   decimal.NewFromInt(total),
		PaidAmount:    decimal.NewFromInt(paid),
		CreatedBy:     "system",
		UpdatedBy:     "system",
		RegisteredAt:  now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)

	return p
}

func TestParticipantDAO_InsertAndFind(t *testing.T) {
	d := NewParticipantDAO(newTestDB(t))
	ctx := context.Background()

	created := createTestParticipant(t, d, 0, 100)
	assert.Equal(t, 1, created.Version)

	found, err := d.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", found.FullName)
	assert.True(t, decimal.NewFromInt(100).Equal(found.TotalAmount))
	assert.True(t, found.PaidAmount.IsZero())

	_, err = d.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestParticipantDAO_FindAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	d := NewParticipantDAO(db)

	first := createTestParticipant(t, d, 0, 100)
	second := createTestParticipant(t, d, 0, 100)
	require.NoError(t, db.Model(&Participant{}).Where("id = ?", first.ID).
		Update("registered_at", time.Now().UTC().Add(-time.Hour)).Error)

	all, err := d.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestParticipantDAO_UpdateBumpsVersion(t *testing.T) {
	d := NewParticipantDAO(newTestDB(t))
	ctx := context.Background()
	p := createTestParticipant(t, d, 0, 100)

	p.PaidAmount = decimal.NewFromInt(40)
	p.PaymentStatus = StatusPartial
	updated, err := d.Update(ctx, p, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, StatusPartial, updated.PaymentStatus)
	assert.True(t, decimal.NewFromInt(40).Equal(updated.PaidAmount))
}

func TestParticipantDAO_UpdateStaleVersion(t *testing.T) {
	d := NewParticipantDAO(newTestDB(t))
	ctx := context.Background()
	p := createTestParticipant(t, d, 0, 100)

	p.FullName = "Someone Else"
	_, err := d.Update(ctx, p, 7)
	assert.ErrorIs(t, err, ErrVersionConflict)

	stored, err := d.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", stored.FullName)
	assert.Equal(t, 1, stored.Version)

	p.ID = "missing"
	_, err = d.Update(ctx, p, 1)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestParticipantDAO_UpdateWithHistory(t *testing.T) {
	db := newTestDB(t)
	d := NewParticipantDAO(db)
	h := NewPaymentHistoryDAO(db)
	ctx := context.Background()
	p := createTestParticipant(t, d, 0, 100)

	p.PaidAmount = decimal.NewFromInt(100)
	p.PaymentStatus = StatusPaid
	_, err := d.UpdateWithHistory(ctx, p, 1, PaymentHistory{
		PreviousPaidAmount:  decimal.Zero,
		NewPaidAmount:       decimal.NewFromInt(100),
		PreviousTotalAmount: decimal.NewFromInt(100),
		NewTotalAmount:      decimal.NewFromInt(100),
		PreviousStatus:      StatusUnpaid,
		NewStatus:           StatusPaid,
		UpdatedBy:           "admin",
	})
	require.NoError(t, err)

	entries, err := h.FindByParticipantID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, StatusUnpaid, entries[0].PreviousStatus)
	assert.Equal(t, StatusPaid, entries[0].NewStatus)
	assert.NotEmpty(t, entries[0].ID)
}

func TestParticipantDAO_UpdateWithHistoryConflictWritesNothing(t *testing.T) {
	db := newTestDB(t)
	d := NewParticipantDAO(db)
	h := NewPaymentHistoryDAO(db)
	ctx := context.Background()
	p := createTestParticipant(t, d, 0, 100)

	p.PaidAmount = decimal.NewFromInt(50)
	_, err := d.UpdateWithHistory(ctx, p, 3, PaymentHistory{UpdatedBy: "admin"})
	assert.ErrorIs(t, err, ErrVersionConflict)

	entries, err := h.FindByParticipantID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParticipantDAO_Delete(t *testing.T) {
	db := newTestDB(t)
	d := NewParticipantDAO(db)
	ctx := context.Background()
	p := createTestParticipant(t, d, 0, 100)

	assert.ErrorIs(t, d.Delete(ctx, "missing"), ErrParticipantNotFound)

	all, err := d.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, d.Delete(ctx, p.ID))
	exists, err := d.Exists(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPaymentHistory_SurvivesParticipantDeletion(t *testing.T) {
	db := newTestDB(t)
	d := NewParticipantDAO(db)
	h := NewPaymentHistoryDAO(db)
	ctx := context.Background()
	p := createTestParticipant(t, d, 0, 100)

	p.PaidAmount = decimal.NewFromInt(10)
	p.PaymentStatus = StatusPartial
	_, err := d.UpdateWithHistory(ctx, p, 1, PaymentHistory{UpdatedBy: "admin", NewStatus: StatusPartial, PreviousStatus: StatusUnpaid})
	require.NoError(t, err)
	require.NoError(t, d.Delete(ctx, p.ID))

	entries, err := h.FindByParticipantID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestScanSessionDAO_Insert(t *testing.T) {
	d := NewScanSessionDAO(newTestDB(t))
	ctx := context.Background()
	by := "door-1"

	s, err := d.Insert(ctx, ScanSession{ParticipantID: "abc", ScannedBy: &by, ResolvedVia: "json"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.False(t, s.ScannedAt.IsZero())

	count, err := d.CountByParticipantID(ctx, "abc")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAdminDAO_DuplicateUsername(t *testing.T) {
	d := NewAdminDAO(newTestDB(t))
	ctx := context.Background()

	created, err := d.Insert(ctx, Admin{Username: "door", Password: "hash"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = d.Insert(ctx, Admin{Username: "door", Password: "other"})
	assert.ErrorIs(t, err, ErrAdminUsernameExists)

	found, err := d.FindByUsername(ctx, "door")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = d.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
