package bootstrap

import (
	"context"
	"fmt"

	"VaultKeeper/internal/config"
	"VaultKeeper/internal/repo"
	"VaultKeeper/internal/service"

	"go.uber.org/zap"
)

// OpenKeeper открывает БД из cfg.DatabaseDSN, выполняет миграции и собирает Keeper.
// Возвращает (keeper, cleanup, error); cleanup закрывает соединение с БД и
// безопасен при повторном вызове.
func OpenKeeper(ctx context.Context, cfg *config.Config, logger *zap.SugaredLogger) (*service.Keeper, func() error, error) {
	db, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open vault db: %w", err)
	}
	closed := false
	cleanup := func() error {
		if closed {
			return nil
		}
		closed = true
		return repo.CloseDB(db)
	}

	k, err := service.NewKeeper(
		ctx,
		repo.NewVaultRepository(db),
		repo.NewFavoriteKeyRepository(db),
		repo.NewItemRepository(db),
		logger,
		service.Options{},
	)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	return k, cleanup, nil
}

// NewLogger создаёт zap-логгер: development при debug, иначе production.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
