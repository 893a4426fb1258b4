package repo

import (
	"VaultKeeper/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// VaultRepository — доступ к единственной записи хранилища.
type VaultRepository interface {
	// GetOrCreate возвращает хранилище, создавая его с masterKey, если его ещё нет.
	GetOrCreate(ctx context.Context, masterKey string) (*model.Vault, error)
}

type vaultRepo struct {
	db *gorm.DB
}

// NewVaultRepository создаёт реализацию репозитория для Vault.
func NewVaultRepository(db *gorm.DB) VaultRepository {
	return &vaultRepo{db: db}
}

func (r *vaultRepo) GetOrCreate(ctx context.Context, masterKey string) (*model.Vault, error) {
	var v model.Vault
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Order("id").Take(&v).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		v = model.Vault{MasterKey: masterKey}
		return tx.Create(&v).Error
	})
	if err != nil {
		return nil, err
	}
	return &v, nil
}
