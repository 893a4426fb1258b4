package service

import (
	"VaultKeeper/internal/model/view"
	"VaultKeeper/internal/repo"
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// DefaultMasterKey — мастер-ключ, с которым создаётся новое хранилище.
const DefaultMasterKey = "clave"

// Keeper — точка входа слоя представления: хранилище, его ключи, записи,
// генератор паролей и оценка безопасности.
type Keeper struct {
	masterKey string

	Validator *Validator
	Keys      *KeyRegistry
	Items     *ItemCatalog
	Passwords *PasswordGenerator
	Scorer    *SecurityScorer
}

// Options — необязательные зависимости Keeper. Нулевые значения заменяются на рабочие.
type Options struct {
	Rand *rand.Rand
	Now  func() time.Time
}

// NewKeeper открывает единственное хранилище (создавая его при первом обращении)
// и собирает сервисы поверх репозиториев.
func NewKeeper(
	ctx context.Context,
	vaults repo.VaultRepository,
	keys repo.FavoriteKeyRepository,
	items repo.ItemRepository,
	logger *zap.SugaredLogger,
	opts Options,
) (*Keeper, error) {
	v, err := vaults.GetOrCreate(ctx, DefaultMasterKey)
	if err != nil {
		logger.Errorw("open vault", "error", err)
		return nil, fmt.Errorf("open vault: %w", err)
	}
	logger.Infow("vault opened", "vault_id", v.ID)

	validator := NewValidator(v.ID, keys, items)
	return &Keeper{
		masterKey: v.MasterKey,
		Validator: validator,
		Keys:      NewKeyRegistry(v.ID, keys, validator, logger),
		Items:     NewItemCatalog(v.ID, items, validator, logger),
		Passwords: NewPasswordGenerator(opts.Rand),
		Scorer:    NewSecurityScorer(v.ID, keys, items, opts.Now),
	}, nil
}

// MasterKey возвращает мастер-ключ хранилища.
func (k *Keeper) MasterKey() string { return k.masterKey }

func (k *Keeper) ListKeys(ctx context.Context) ([]view.FavoriteKey, error) {
	return k.Keys.List(ctx)
}

func (k *Keeper) GetKey(ctx context.Context, pos int) (view.FavoriteKey, error) {
	return k.Keys.Get(ctx, pos)
}

func (k *Keeper) CreateKey(ctx context.Context, in KeyInput) (string, error) {
	return k.Keys.Create(ctx, in)
}

func (k *Keeper) EditKey(ctx context.Context, pos int, in KeyInput) (string, error) {
	return k.Keys.Edit(ctx, pos, in)
}

func (k *Keeper) DeleteKey(ctx context.Context, pos int) (string, error) {
	return k.Keys.Delete(ctx, pos)
}

func (k *Keeper) KeySecret(ctx context.Context, name string) (string, error) {
	return k.Keys.Secret(ctx, name)
}

func (k *Keeper) ListItems(ctx context.Context) ([]view.Item, error) {
	return k.Items.List(ctx)
}

func (k *Keeper) GetItem(ctx context.Context, pos int) (view.Item, error) {
	return k.Items.Get(ctx, pos)
}

func (k *Keeper) CreateItem(ctx context.Context, in ItemInput) (string, error) {
	return k.Items.Create(ctx, in)
}

func (k *Keeper) EditItem(ctx context.Context, pos int, in ItemInput) (string, error) {
	return k.Items.Edit(ctx, pos, in)
}

func (k *Keeper) DeleteItem(ctx context.Context, pos int) error {
	return k.Items.Delete(ctx, pos)
}

// GeneratePassword возвращает новый случайный пароль.
func (k *Keeper) GeneratePassword() string { return k.Passwords.Generate() }

// Report пересчитывает оценку безопасности хранилища.
func (k *Keeper) Report(ctx context.Context) (Report, error) {
	return k.Scorer.Report(ctx)
}
