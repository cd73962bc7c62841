package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/eventpass-api/internal/domain"
)

func TestStatsService_Stats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewStatsService(env.repo)
	fixed := time.Now().UTC()
	svc.now = func() time.Time { return fixed }

	a, err := env.participants.Register(ctx, Registration{FullName: "A", Phone: "1", Age: "20"})
	require.NoError(t, err)
	_, err = env.participants.Register(ctx, Registration{FullName: "B", Phone: "2", Age: "21"})
	require.NoError(t, err)
	_, err = env.payments.ApplyPayment(ctx, domain.PaymentUpdate{ParticipantID: a.ID, PaidAmount: dec("100"), TotalAmount: dec("100")})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Paid)
	assert.Equal(t, 1, stats.Unpaid)
	assert.True(t, dec("100").Equal(stats.TotalRevenue))
	assert.True(t, dec("200").Equal(stats.ExpectedRevenue))
	assert.InDelta(t, 50.0, stats.CollectionRate, 0.001)
	assert.Equal(t, 2, stats.RegistrationTrend.Today)
	assert.Equal(t, fixed, stats.LastUpdate)
}
