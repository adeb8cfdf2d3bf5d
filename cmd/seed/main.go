// Command seed provisions the default manager account and slot catalog.
// It is idempotent: records that already exist are left untouched, so it
// is safe to run on every deploy.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/agendalivre/booking-service/internal/config"
	"github.com/agendalivre/booking-service/internal/domain"
	managerRepo "github.com/agendalivre/booking-service/internal/infra/storage/manager"
	timeslotRepo "github.com/agendalivre/booking-service/internal/infra/storage/timeslot"
	"github.com/agendalivre/booking-service/internal/service/auth"
	"github.com/agendalivre/booking-service/pkg/logger"
	"github.com/agendalivre/booking-service/pkg/types"
)

const defaultManagerUsername = "admin"

// defaultCatalog is the out-of-the-box schedule: two half-hour grids,
// morning and afternoon.
var defaultCatalog = []types.TimeString{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	ctx := context.Background()

	if err := seedManager(ctx, managerRepo.NewRepository(db), cfg.Auth.DefaultManagerPassword, log); err != nil {
		log.Fatal("Failed to seed manager: %v", err)
	}

	if err := seedCatalog(ctx, timeslotRepo.NewRepository(db), log); err != nil {
		log.Fatal("Failed to seed slot catalog: %v", err)
	}

	log.Info("Seeding complete")
}

func seedManager(ctx context.Context, repo *managerRepo.Repository, password string, log *logger.Logger) error {
	if password == "" {
		return fmt.Errorf("auth.default_manager_password is not configured")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = repo.Create(ctx, &domain.Manager{
		Username:     defaultManagerUsername,
		PasswordHash: hash,
	})
	if errors.Is(err, managerRepo.ErrDuplicateUsername) {
		log.Info("Manager %q already exists, skipping", defaultManagerUsername)
		return nil
	}
	if err != nil {
		return err
	}

	log.Info("Created default manager %q", defaultManagerUsername)
	return nil
}

func seedCatalog(ctx context.Context, repo *timeslotRepo.Repository, log *logger.Logger) error {
	created := 0
	for _, slotTime := range defaultCatalog {
		_, err := repo.Create(ctx, &domain.TimeSlot{SlotTime: slotTime, IsActive: true})
		if errors.Is(err, timeslotRepo.ErrDuplicateSlot) {
			continue
		}
		if err != nil {
			return err
		}
		created++
	}

	log.Info("Slot catalog seeded: %d created, %d already present",
		created, len(defaultCatalog)-created)
	return nil
}
