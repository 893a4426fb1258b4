package repo

import (
	"VaultKeeper/internal/model"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FavoriteKeyRepository — доступ к избранным ключам хранилища.
// Позиция pos — индекс в списке, отсортированном по имени, на момент вызова.
type FavoriteKeyRepository interface {
	// List возвращает все ключи хранилища по возрастанию имени.
	List(ctx context.Context, vaultID int64) ([]model.FavoriteKey, error)

	// GetAt возвращает ключ на позиции pos или ErrNotFound.
	GetAt(ctx context.Context, vaultID int64, pos int) (*model.FavoriteKey, error)

	// GetByName находит ключ по точному имени или возвращает ErrNotFound.
	GetByName(ctx context.Context, vaultID int64, name string) (*model.FavoriteKey, error)

	// CountByName считает ключи с точно таким именем.
	CountByName(ctx context.Context, vaultID int64, name string) (int64, error)

	// Create сохраняет новый ключ, назначая ему ID.
	Create(ctx context.Context, k *model.FavoriteKey) error

	// UpdateAt применяет apply к ключу на позиции pos и сохраняет его в одной транзакции.
	UpdateAt(ctx context.Context, vaultID int64, pos int, apply func(*model.FavoriteKey)) error

	// DeleteAt удаляет ключ на позиции pos. Если на ключ ссылаются записи — ErrKeyInUse.
	DeleteAt(ctx context.Context, vaultID int64, pos int) (*model.FavoriteKey, error)

	// CountReferences считает записи, ссылающиеся на ключ.
	CountReferences(ctx context.Context, keyID string) (int64, error)
}

type favoriteKeyRepo struct {
	db *gorm.DB
}

// NewFavoriteKeyRepository создаёт реализацию репозитория для FavoriteKey.
func NewFavoriteKeyRepository(db *gorm.DB) FavoriteKeyRepository {
	return &favoriteKeyRepo{db: db}
}

func (r *favoriteKeyRepo) List(ctx context.Context, vaultID int64) ([]model.FavoriteKey, error) {
	var keys []model.FavoriteKey
	err := r.db.WithContext(ctx).
		Where("vault_id = ?", vaultID).
		Order("name ASC").
		Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *favoriteKeyRepo) GetAt(ctx context.Context, vaultID int64, pos int) (*model.FavoriteKey, error) {
	return keyAt(r.db.WithContext(ctx), vaultID, pos)
}

func (r *favoriteKeyRepo) GetByName(ctx context.Context, vaultID int64, name string) (*model.FavoriteKey, error) {
	return keyByName(r.db.WithContext(ctx), vaultID, name)
}

func (r *favoriteKeyRepo) CountByName(ctx context.Context, vaultID int64, name string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.FavoriteKey{}).
		Where("vault_id = ? AND name = ?", vaultID, name).
		Count(&n).Error
	return n, err
}

func (r *favoriteKeyRepo) Create(ctx context.Context, k *model.FavoriteKey) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *favoriteKeyRepo) UpdateAt(ctx context.Context, vaultID int64, pos int, apply func(*model.FavoriteKey)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		k, err := keyAt(tx, vaultID, pos)
		if err != nil {
			return err
		}
		apply(k)
		// идентичность и принадлежность не меняются
		return tx.Model(k).Select("name", "secret", "hint").Updates(k).Error
	})
}

func (r *favoriteKeyRepo) DeleteAt(ctx context.Context, vaultID int64, pos int) (*model.FavoriteKey, error) {
	var deleted *model.FavoriteKey
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		k, err := keyAt(tx, vaultID, pos)
		if err != nil {
			return err
		}
		refs, err := countReferences(tx, k.ID)
		if err != nil {
			return err
		}
		if refs > 0 {
			return ErrKeyInUse
		}
		if err := tx.Delete(k).Error; err != nil {
			return err
		}
		deleted = k
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *favoriteKeyRepo) CountReferences(ctx context.Context, keyID string) (int64, error) {
	return countReferences(r.db.WithContext(ctx), keyID)
}

func keyAt(db *gorm.DB, vaultID int64, pos int) (*model.FavoriteKey, error) {
	if pos < 0 {
		return nil, ErrNotFound
	}
	var k model.FavoriteKey
	err := db.Where("vault_id = ?", vaultID).
		Order("name ASC").
		Offset(pos).
		Limit(1).
		Take(&k).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &k, nil
}

func keyByName(db *gorm.DB, vaultID int64, name string) (*model.FavoriteKey, error) {
	var k model.FavoriteKey
	err := db.Where("vault_id = ? AND name = ?", vaultID, name).Take(&k).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &k, nil
}

func countReferences(db *gorm.DB, keyID string) (int64, error) {
	var n int64
	err := db.Model(&model.Item{}).Where("key_id = ?", keyID).Count(&n).Error
	return n, err
}
