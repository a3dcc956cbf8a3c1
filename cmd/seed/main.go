// Command seed loads an admin account and a starter field catalogue.
// Running it twice is safe: existing admins and fields are skipped.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"field-booking/internal/domain/authz"
	"field-booking/internal/domain/user"
	"field-booking/internal/handler/middleware"
	"field-booking/internal/infra/cache"
	"field-booking/internal/infra/db"
	"field-booking/internal/infra/readstore"
	sqlc "field-booking/internal/infra/sqlc/generated"
	"field-booking/internal/infra/uow"
	"field-booking/internal/pkg/config"
	"field-booking/internal/pkg/errs"
	"field-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Admin  seedAdmin   `yaml:"admin"`
	Fields []seedField `yaml:"fields"`
}

type seedAdmin struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type seedField struct {
	Name         string  `yaml:"name"`
	Location     string  `yaml:"location"`
	SportType    string  `yaml:"sport_type"`
	PricePerHour float64 `yaml:"price_per_hour"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var path string
	flagSet := pflag.NewFlagSet("seed", pflag.ContinueOnError)
	flagSet.StringVarP(&path, "file", "f", "db/seed/fields.yaml", "seed file")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	data, err := readSeedFile(path)
	if err != nil {
		return err
	}

	cfg, err := config.LoadToolConfig()
	if err != nil {
		return err
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx := context.Background()
	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer cleanup()

	q := sqlc.New()
	unit := uow.NewPostgresUoW(pool, q)
	system := authz.NewActor(uuid.Nil, user.RoleAdmin)

	if err := seedAdminUser(ctx, commands.NewUserCommands(unit, cache.NoopFieldCache{}, logger), system, data.Admin, logger); err != nil {
		return err
	}

	existing, err := readstore.NewFieldReadStore(q).ListActive(ctx, pool, nil)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(existing))
	for _, f := range existing {
		known[f.Name] = true
	}

	fields := commands.NewFieldCommands(unit, cache.NoopFieldCache{}, logger)
	for _, f := range data.Fields {
		if known[f.Name] {
			logger.Info("field exists, skipping", "name", f.Name)
			continue
		}
		id, err := fields.Create(ctx, system, commands.CreateFieldRequest{
			Name:         f.Name,
			Location:     f.Location,
			SportType:    f.SportType,
			PricePerHour: f.PricePerHour,
		})
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		logger.Info("field created", "name", f.Name, "id", id.String())
	}
	return nil
}

func readSeedFile(path string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data seedFile
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return &data, nil
}

func seedAdminUser(ctx context.Context, users commands.UserCommands, actor authz.Actor, admin seedAdmin, logger *slog.Logger) error {
	if admin.Email == "" {
		return nil
	}
	id, err := users.Create(ctx, actor, commands.CreateUserRequest{
		Name:     admin.Name,
		Email:    admin.Email,
		Password: admin.Password,
		Role:     string(user.RoleAdmin),
	})
	switch {
	case errs.Is(err, commands.ErrEmailAlreadyExists):
		logger.Info("admin exists, skipping", "email", admin.Email)
		return nil
	case err != nil:
		return fmt.Errorf("admin %q: %w", admin.Email, err)
	}
	logger.Info("admin created", "email", admin.Email, "id", id.String())
	return nil
}
