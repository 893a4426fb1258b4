package service

import (
	"VaultKeeper/internal/model"
	"VaultKeeper/internal/model/view"
	"VaultKeeper/internal/repo"
	"context"
	"fmt"

	"go.uber.org/zap"
)

// KeyRegistry — операции над избранными ключами хранилища.
// Позиции отсчитываются в списке List, отсортированном по имени; вызывающий
// должен получать список заново перед каждым обращением по позиции.
type KeyRegistry struct {
	vaultID   int64
	repo      repo.FavoriteKeyRepository
	validator *Validator
	logger    *zap.SugaredLogger
}

// NewKeyRegistry создаёт реестр ключей хранилища vaultID.
func NewKeyRegistry(vaultID int64, r repo.FavoriteKeyRepository, v *Validator, logger *zap.SugaredLogger) *KeyRegistry {
	return &KeyRegistry{vaultID: vaultID, repo: r, validator: v, logger: logger}
}

// List возвращает ключи по возрастанию имени.
func (s *KeyRegistry) List(ctx context.Context) ([]view.FavoriteKey, error) {
	keys, err := s.repo.List(ctx, s.vaultID)
	if err != nil {
		return nil, s.fail("list favorite keys", err)
	}
	return view.FromFavoriteKeys(keys), nil
}

// Get возвращает ключ на позиции pos или ErrNotFound.
func (s *KeyRegistry) Get(ctx context.Context, pos int) (view.FavoriteKey, error) {
	k, err := s.repo.GetAt(ctx, s.vaultID, pos)
	if err != nil {
		return view.FavoriteKey{}, s.fail("get favorite key", err)
	}
	return view.FromFavoriteKey(*k), nil
}

// Create проверяет и сохраняет новый ключ. Непустое сообщение — ключ не создан.
func (s *KeyRegistry) Create(ctx context.Context, in KeyInput) (string, error) {
	msg, err := s.validator.ValidateKey(ctx, NewRecord, in)
	if err != nil || msg != "" {
		return s.rejected("create favorite key", msg, err)
	}
	k := &model.FavoriteKey{VaultID: s.vaultID, Name: in.Name, Secret: in.Secret, Hint: in.Hint}
	if err := s.repo.Create(ctx, k); err != nil {
		return "", s.fail("create favorite key", err)
	}
	s.logger.Infow("favorite key created", "name", k.Name)
	return "", nil
}

// Edit проверяет и перезаписывает ключ на позиции pos.
func (s *KeyRegistry) Edit(ctx context.Context, pos int, in KeyInput) (string, error) {
	if pos < 0 {
		return "", ErrNotFound
	}
	msg, err := s.validator.ValidateKey(ctx, pos, in)
	if err != nil || msg != "" {
		return s.rejected("edit favorite key", msg, err)
	}
	err = s.repo.UpdateAt(ctx, s.vaultID, pos, func(k *model.FavoriteKey) {
		k.Name = in.Name
		k.Secret = in.Secret
		k.Hint = in.Hint
	})
	if err != nil {
		return "", s.fail("edit favorite key", err)
	}
	s.logger.Infow("favorite key updated", "pos", pos, "name", in.Name)
	return "", nil
}

// Delete удаляет ключ на позиции pos, если на него не ссылается ни одна запись.
// Иначе возвращает MsgKeyInUse и ключ остаётся.
func (s *KeyRegistry) Delete(ctx context.Context, pos int) (string, error) {
	msg, err := s.validator.ValidateDeleteKey(ctx, pos)
	if err != nil || msg != "" {
		return s.rejected("delete favorite key", msg, err)
	}
	k, err := s.repo.DeleteAt(ctx, s.vaultID, pos)
	if err != nil {
		return "", s.fail("delete favorite key", err)
	}
	s.logger.Infow("favorite key deleted", "name", k.Name)
	return "", nil
}

// Secret раскрывает значение ключа по имени.
func (s *KeyRegistry) Secret(ctx context.Context, name string) (string, error) {
	k, err := s.repo.GetByName(ctx, s.vaultID, name)
	if err != nil {
		return "", s.fail("reveal favorite key", err)
	}
	return k.Secret, nil
}

func (s *KeyRegistry) rejected(op, msg string, err error) (string, error) {
	if err != nil {
		return "", s.fail(op, err)
	}
	s.logger.Debugw("validation failed", "op", op, "message", msg)
	return msg, nil
}

func (s *KeyRegistry) fail(op string, err error) error {
	return logFailure(s.logger, op, err)
}

// logFailure переводит ошибку хранилища в ошибку сервиса и пишет её в лог.
// Нарушения предусловий возвращаются как есть, сбои хранилища оборачиваются.
func logFailure(logger *zap.SugaredLogger, op string, err error) error {
	err = mapRepoErr(err)
	if isPrecondition(err) {
		logger.Warnw(op, "error", err)
		return err
	}
	logger.Errorw(op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
