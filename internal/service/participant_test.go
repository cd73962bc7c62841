package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/pkg/qrcode"
)

func TestParticipantService_RegisterDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	p, err := env.participants.Register(ctx, Registration{FullName: "Ana", Phone: "600", Age: "31"})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.PaymentUnpaid, p.PaymentStatus)
	assert.True(t, dec("100").Equal(p.TotalAmount))
	assert.True(t, p.PaidAmount.IsZero())
	assert.Equal(t, 1, p.Version)

	png, err := qrcode.PNGFromDataURL(p.QRCode)
	require.NoError(t, err)
	text, err := qrcode.DecodeBytes(png)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+p.ID+`","name":"Ana","paymentStatus":"unpaid"}`, text)

	assert.Equal(t, []domain.EventType{domain.EventParticipantCreated}, env.publisher.types())
}

func TestParticipantService_RegisterWithAmounts(t *testing.T) {
	env := newTestEnv(t)

	p, err := env.participants.Register(context.Background(), Registration{
		FullName:    "Ana",
		Phone:       "600",
		Age:         "31",
		TotalAmount: decPtr("80"),
		PaidAmount:  decPtr("80"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, p.PaymentStatus)

	_, err = env.participants.Register(context.Background(), Registration{
		FullName:   "Ana",
		Phone:      "600",
		Age:        "31",
		PaidAmount: decPtr("-1"),
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestParticipantService_UpdateRecomputesStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p, err := env.participants.Register(ctx, Registration{FullName: "Ana", Phone: "600", Age: "31"})
	require.NoError(t, err)

	updated, err := env.participants.Update(ctx, p.ID, domain.ParticipantPatch{PaidAmount: decPtr("40")}, "door")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPartial, updated.PaymentStatus)
	assert.True(t, dec("60").Equal(updated.PendingAmount()))
	assert.Equal(t, 2, updated.Version)
	assert.NotEqual(t, p.QRCode, updated.QRCode)

	history, err := env.payments.PaymentHistory(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "door", history[0].UpdatedBy)
	assert.Equal(t, domain.PaymentUnpaid, history[0].PreviousStatus)
}

func TestParticipantService_UpdateNameOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p, err := env.participants.Register(ctx, Registration{FullName: "Ana", Phone: "600", Age: "31"})
	require.NoError(t, err)

	updated, err := env.participants.Update(ctx, p.ID, domain.ParticipantPatch{FullName: strPtr("Ana María")}, "door")
	require.NoError(t, err)
	assert.Equal(t, "Ana María", updated.FullName)
	assert.NotEqual(t, p.QRCode, updated.QRCode)

	history, err := env.payments.PaymentHistory(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	updated, err = env.participants.Update(ctx, p.ID, domain.ParticipantPatch{Phone: strPtr("611")}, "door")
	require.NoError(t, err)
	assert.Equal(t, "611", updated.Phone)
	assert.Equal(t, 3, updated.Version)
}

func TestParticipantService_UpdateStaleVersion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p, err := env.participants.Register(ctx, Registration{FullName: "Ana", Phone: "600", Age: "31"})
	require.NoError(t, err)

	_, err = env.participants.Update(ctx, p.ID, domain.ParticipantPatch{FullName: strPtr("B")}, "door")
	require.NoError(t, err)

	_, err = env.participants.Update(ctx, p.ID, domain.ParticipantPatch{FullName: strPtr("C"), Version: 1}, "door")
	assert.ErrorIs(t, err, ErrVersionConflict)

	stored, err := env.participants.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "B", stored.FullName)
}

func TestParticipantService_DeleteUnknown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.participants.Register(ctx, Registration{FullName: "Ana", Phone: "600", Age: "31"})
	require.NoError(t, err)

	err = env.participants.Delete(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	all, err := env.participants.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestParticipantService_QRCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	p, err := env.participants.Register(ctx, Registration{FullName: "Ana", Phone: "600", Age: "31"})
	require.NoError(t, err)

	png, err := env.participants.QRCode(ctx, p.ID)
	require.NoError(t, err)
	text, err := qrcode.DecodeBytes(png)
	require.NoError(t, err)
	assert.Contains(t, text, p.ID)

	_, err = env.participants.QRCode(ctx, "missing")
	assert.ErrorIs(t, err, ErrParticipantNotFound)
}
