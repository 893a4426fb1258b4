package repo

import (
	"VaultKeeper/internal/model"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRepository — доступ к записям хранилища всех вариантов.
// Позиция pos — индекс в списке, отсортированном по имени, на момент вызова.
type ItemRepository interface {
	// List возвращает все записи по возрастанию имени с загруженным ключом.
	List(ctx context.Context, vaultID int64) ([]model.Item, error)

	// GetAt возвращает запись на позиции pos или ErrNotFound.
	GetAt(ctx context.Context, vaultID int64, pos int) (*model.Item, error)

	// CountByName считает записи любого варианта с точно таким именем.
	CountByName(ctx context.Context, vaultID int64, name string) (int64, error)

	// Create сохраняет запись. Для вариантов с ключом keyName разрешается
	// в той же транзакции; если ключа нет — ErrKeyNotFound.
	Create(ctx context.Context, it *model.Item, keyName string) error

	// UpdateAt применяет apply к записи на позиции pos, разрешает keyName и сохраняет.
	UpdateAt(ctx context.Context, vaultID int64, pos int, keyName string, apply func(*model.Item)) error

	// DeleteAt удаляет запись на позиции pos.
	DeleteAt(ctx context.Context, vaultID int64, pos int) (*model.Item, error)

	// CountByType считает записи варианта t.
	CountByType(ctx context.Context, vaultID int64, t model.ItemType) (int64, error)

	// CountExpiringBefore считает карты и документы, срок которых истекает строго раньше cutoff.
	CountExpiringBefore(ctx context.Context, vaultID int64, cutoff model.Date) (int64, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) List(ctx context.Context, vaultID int64) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Preload("Key").
		Where("vault_id = ?", vaultID).
		Order("name ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepo) GetAt(ctx context.Context, vaultID int64, pos int) (*model.Item, error) {
	return itemAt(r.db.WithContext(ctx).Preload("Key"), vaultID, pos)
}

func (r *itemRepo) CountByName(ctx context.Context, vaultID int64, name string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("vault_id = ? AND name = ?", vaultID, name).
		Count(&n).Error
	return n, err
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item, keyName string) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := bindKey(tx, it, keyName); err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(it).Error
	})
}

func (r *itemRepo) UpdateAt(ctx context.Context, vaultID int64, pos int, keyName string, apply func(*model.Item)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		it, err := itemAt(tx, vaultID, pos)
		if err != nil {
			return err
		}
		apply(it)
		if err := bindKey(tx, it, keyName); err != nil {
			return err
		}
		// перезаписываем все колонки: смена варианта обнуляет чужие группы полей
		return tx.Model(it).
			Select("*").
			Omit("id", "vault_id", clause.Associations).
			Updates(it).Error
	})
}

func (r *itemRepo) DeleteAt(ctx context.Context, vaultID int64, pos int) (*model.Item, error) {
	var deleted *model.Item
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		it, err := itemAt(tx, vaultID, pos)
		if err != nil {
			return err
		}
		if err := tx.Delete(it).Error; err != nil {
			return err
		}
		deleted = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func (r *itemRepo) CountByType(ctx context.Context, vaultID int64, t model.ItemType) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("vault_id = ? AND type = ?", vaultID, t).
		Count(&n).Error
	return n, err
}

func (r *itemRepo) CountExpiringBefore(ctx context.Context, vaultID int64, cutoff model.Date) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Item{}).
		Where("vault_id = ?", vaultID).
		Where(
			r.db.Where("type = ? AND card_expires_on < ?", model.ItemCard, cutoff).
				Or("type = ? AND identity_expires_on < ?", model.ItemIdentity, cutoff),
		).
		Count(&n).Error
	return n, err
}

func itemAt(db *gorm.DB, vaultID int64, pos int) (*model.Item, error) {
	if pos < 0 {
		return nil, ErrNotFound
	}
	var it model.Item
	err := db.Where("vault_id = ?", vaultID).
		Order("name ASC").
		Offset(pos).
		Limit(1).
		Take(&it).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

// bindKey проставляет KeyID по имени ключа. У identity ссылки нет.
func bindKey(tx *gorm.DB, it *model.Item, keyName string) error {
	it.Key = nil
	if !it.Type.UsesKey() {
		it.KeyID = nil
		return nil
	}
	k, err := keyByName(tx, it.VaultID, keyName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrKeyNotFound
		}
		return err
	}
	it.KeyID = &k.ID
	it.Key = k
	return nil
}
