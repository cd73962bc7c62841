package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/vietanh2810/eventpass-api/internal/domain"
	"github.com/vietanh2810/eventpass-api/internal/repository"
	"github.com/vietanh2810/eventpass-api/internal/repository/dao"
	"github.com/vietanh2810/eventpass-api/internal/service"
)

type seedFile struct {
	Participants []seedParticipant `yaml:"participants"`
}

type seedParticipant struct {
	FullName    string   `yaml:"fullName"`
	Phone       string   `yaml:"phone"`
	Age         string   `yaml:"age"`
	Email       string   `yaml:"email"`
	TotalAmount *float64 `yaml:"totalAmount"`
	PaidAmount  *float64 `yaml:"paidAmount"`
}

func (p seedParticipant) registration() service.Registration {
	reg := service.Registration{
		FullName: p.FullName,
		Phone:    p.Phone,
		Age:      p.Age,
	}
	if p.Email != "" {
		email := p.Email
		reg.Email = &email
	}
	if p.TotalAmount != nil {
		total := decimal.NewFromFloat(*p.TotalAmount).Round(2)
		reg.TotalAmount = &total
	}
	if p.PaidAmount != nil {
		paid := decimal.NewFromFloat(*p.PaidAmount).Round(2)
		reg.PaidAmount = &paid
	}
	return reg
}

func loadSeedFile(path string) (seedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return seedFile{}, fmt.Errorf("os.Open -> %w", err)
	}
	defer f.Close()

	var seed seedFile
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return seedFile{}, fmt.Errorf("dec.Decode -> %w", err)
	}

	return seed, nil
}

type registrar interface {
	Register(ctx context.Context, reg service.Registration) (domain.Participant, error)
}

func seedParticipants(ctx context.Context, svc registrar, seed seedFile) (int, error) {
	for i, p := range seed.Participants {
		created, err := svc.Register(ctx, p.registration())
		if err != nil {
			return i, fmt.Errorf("participant %d (%s) -> %w", i, p.FullName, err)
		}
		zap.L().Debug("seeded participant", zap.String("id", created.ID), zap.String("status", string(created.PaymentStatus)))
	}

	return len(seed.Participants), nil
}

func seedCmd(configPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Register sample participants from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup(*configPath)
			if err != nil {
				return err
			}

			seed, err := loadSeedFile(file)
			if err != nil {
				return err
			}

			database, err := openDatabase(conf)
			if err != nil {
				return err
			}

			repo := repository.NewParticipantRepository(dao.NewParticipantDAO(database), dao.NewPaymentHistoryDAO(database))
			svc := service.NewParticipantService(repo, nil, decimal.NewFromFloat(conf.Registration.DefaultTotalAmount))

			n, err := seedParticipants(cmd.Context(), svc, seed)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d participants\n", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "./cmd/app/seed.yml", "seed file")

	return cmd
}
