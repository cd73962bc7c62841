//go:build integration

package dao

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/vietanh2810/eventpass-api/internal/db"
)

var (
	pgDB  *gorm.DB
	pgDSN string
)

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not construct pool: %s", err)
	}
	if err = pool.Client.Ping(); err != nil {
		log.Fatalf("could not connect to docker: %s", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=eventpass",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=eventpass",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("could not start postgres: %s", err)
	}
	_ = resource.Expire(120)

	pgDSN = fmt.Sprintf("postgres://eventpass:secret@%s/eventpass?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 60 * time.Second
	if err = pool.Retry(func() error {
		var openErr error
		pgDB, openErr = db.OpenPostgresWithURL(pgDSN)
		return openErr
	}); err != nil {
		log.Fatalf("could not connect to postgres: %s", err)
	}

	if err = db.MigrateUp(pgDSN); err != nil {
		log.Fatalf("could not migrate: %s", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("could not purge postgres: %s", err)
	}

	os.Exit(code)
}

func TestPostgres_ParticipantCAS(t *testing.T) {
	d := NewParticipantDAO(pgDB)
	ctx := context.Background()

	p := createTestParticipant(t, d, 0, 100)

	p.PaidAmount = decimal.NewFromInt(40)
	p.PaymentStatus = StatusPartial
	updated, err := d.UpdateWithHistory(ctx, p, 1, PaymentHistory{
		ParticipantID:       p.ID,
		PreviousPaidAmount:  decimal.Zero,
		NewPaidAmount:       decimal.NewFromInt(40),
		PreviousTotalAmount: decimal.NewFromInt(100),
		NewTotalAmount:      decimal.NewFromInt(100),
		PreviousStatus:      StatusUnpaid,
		NewStatus:           StatusPartial,
		UpdatedBy:           "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.True(t, updated.PaidAmount.Equal(decimal.NewFromInt(40)))

	_, err = d.Update(ctx, p, 1)
	assert.ErrorIs(t, err, ErrVersionConflict)

	_, err = d.Update(ctx, Participant{ID: uuid.New().String()}, 1)
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	history, err := NewPaymentHistoryDAO(pgDB).FindByParticipantID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, StatusPartial, history[0].NewStatus)
}

func TestPostgres_StatusCheckConstraint(t *testing.T) {
	d := NewParticipantDAO(pgDB)

	p := createTestParticipant(t, d, 0, 100)
	p.PaymentStatus = "MAYBE"
	_, err := d.Update(context.Background(), p, 1)
	assert.Error(t, err)
}

func TestPostgres_AdminUsernameUnique(t *testing.T) {
	d := NewAdminDAO(pgDB)
	ctx := context.Background()

	name := "admin-" + uuid.New().String()[:8]
	_, err := d.Insert(ctx, Admin{Username: name, Password: "hash"})
	require.NoError(t, err)

	_, err = d.Insert(ctx, Admin{Username: name, Password: "hash"})
	assert.ErrorIs(t, err, ErrAdminUsernameExists)
}
