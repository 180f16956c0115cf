// Package persistence selects the storage backends configured under storage.
package persistence

import (
	"log/slog"

	"nudge/config"
	"nudge/internal/domain/constants"
	"nudge/internal/domain/repository"
	"nudge/internal/errors"
	"nudge/internal/infra/persistence/memory"
	"nudge/internal/infra/persistence/postgres"
	"nudge/internal/infra/persistence/redis"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories exposes the selected repository implementations to the container
type Repositories struct {
	fx.Out

	Profiles    repository.UserProfileRepository
	Rules       repository.NudgeRuleRepository
	DeliveryLog repository.DeliveryLogRepository
}

// NewRepositories builds the repositories for storage.driver and storage.deliveryLog.
// Connections are only opened for backends that are actually selected.
func NewRepositories(params Params) (Repositories, error) {
	storage := params.Config.Storage
	if storage == nil {
		storage = &config.StorageConfig{Driver: constants.StorageDriverMemory}
	}
	historyDriver := storage.DeliveryLog
	if historyDriver == "" {
		historyDriver = storage.Driver
	}

	var (
		db  *gorm.DB
		out Repositories
	)
	openPostgres := func() (*gorm.DB, error) {
		if db != nil {
			return db, nil
		}

		var err error
		db, err = postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})

		return db, err
	}

	switch storage.Driver {
	case constants.StorageDriverMemory:
		out.Profiles = memory.NewUserProfileRepository()
		out.Rules = memory.NewNudgeRuleRepository()
	case constants.StorageDriverPostgres:
		conn, err := openPostgres()
		if err != nil {
			return Repositories{}, err
		}
		out.Profiles = postgres.NewUserProfileRepository(conn)
		out.Rules = postgres.NewNudgeRuleRepository(conn)
	default:
		return Repositories{}, errors.Errorf("unsupported storage driver %q", storage.Driver)
	}

	switch historyDriver {
	case constants.StorageDriverMemory:
		out.DeliveryLog = memory.NewDeliveryLogRepository()
	case constants.StorageDriverPostgres:
		conn, err := openPostgres()
		if err != nil {
			return Repositories{}, err
		}
		out.DeliveryLog = postgres.NewDeliveryLogRepository(conn)
	case constants.StorageDriverRedis:
		client, err := redis.NewClient(redis.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		out.DeliveryLog = redis.NewDeliveryLogRepository(client, params.Config.Redis.KeyPrefix)
	default:
		return Repositories{}, errors.Errorf("unsupported delivery log driver %q", historyDriver)
	}

	params.Logger.Info("Storage configured",
		slog.String("driver", storage.Driver),
		slog.String("delivery_log", historyDriver),
	)

	return out, nil
}
