package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/heartmarshall/dictionary-api/internal/adapter/memory"
	"github.com/heartmarshall/dictionary-api/internal/adapter/mongodb"
	mongoword "github.com/heartmarshall/dictionary-api/internal/adapter/mongodb/word"
	"github.com/heartmarshall/dictionary-api/internal/adapter/postgres"
	pgword "github.com/heartmarshall/dictionary-api/internal/adapter/postgres/word"
	"github.com/heartmarshall/dictionary-api/internal/config"
	"github.com/heartmarshall/dictionary-api/internal/domain"
)

// WordRepo is the persistence contract shared by every backend.
type WordRepo interface {
	List(ctx context.Context) ([]domain.Word, error)
	Insert(ctx context.Context, word domain.Word) error
	Update(ctx context.Context, id string, word domain.Word) error
	Delete(ctx context.Context, id string) error
}

// Pinger reports store reachability for readiness probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store is an opened backend. Close releases its connections.
type Store struct {
	Words   WordRepo
	Pinger  Pinger
	Backend string

	close func(ctx context.Context) error
}

// Close disconnects from the backend.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStore connects to the backend selected by cfg.Store.Backend.
// For postgres, pending migrations are applied when auto_migrate is set.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMongo:
		client, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to mongo",
			zap.String("database", cfg.Mongo.Database),
			zap.String("collection", cfg.Mongo.Collection),
		)
		return &Store{
			Words:   mongoword.New(client.Words()),
			Pinger:  client,
			Backend: config.BackendMongo,
			close:   client.Disconnect,
		}, nil

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			results, err := postgres.Migrate(ctx, pool)
			if err != nil {
				pool.Close()
				return nil, err
			}
			logger.Info("migrations applied", zap.Int("count", len(results)))
		}
		logger.Info("connected to postgres")
		return &Store{
			Words:   pgword.New(pool),
			Pinger:  pool,
			Backend: config.BackendPostgres,
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.BackendMemory:
		logger.Warn("using in-memory store, data is lost on exit")
		repo := memory.NewWordRepo()
		return &Store{Words: repo, Pinger: repo, Backend: config.BackendMemory}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
