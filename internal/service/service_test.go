package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/repository"
	"github.com/vietanh2810/eventpass-api/internal/repository/dao"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.LiveEvent
}

func (p *recordingPublisher) Publish(e domain.LiveEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []domain.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()

	types := make([]domain.EventType, 0, len(p.events))
	for _, e := range p.events {
		types = append(types, e.Type)
	}
	return types
}

type testEnv struct {
	db           *gorm.DB
	repo         *repository.ParticipantRepository
	sessions     *repository.ScanSessionRepository
	admins       *repository.AdminRepository
	publisher    *recordingPublisher
	participants *ParticipantService
	payments     *PaymentService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, dao.InitTables(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	repo := repository.NewParticipantRepository(dao.NewParticipantDAO(db), dao.NewPaymentHistoryDAO(db))
	pub := &recordingPublisher{}

	return &testEnv{
		db:           db,
		repo:         repo,
		sessions:     repository.NewScanSessionRepository(dao.NewScanSessionDAO(db)),
		admins:       repository.NewAdminRepository(dao.NewAdminDAO(db)),
		publisher:    pub,
		participants: NewParticipantService(repo, pub, decimal.NewFromInt(100)),
		payments:     NewPaymentService(repo, pub),
	}
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}

func strPtr(s string) *string {
	return &s
}
