package service

import (
	"VaultKeeper/internal/repo"
	"errors"
)

// Ошибки нарушения предусловий вызывающей стороной.
// Ошибки валидации сюда не относятся: они возвращаются сообщением.
var (
	ErrNotFound    = errors.New("no record at this position")
	ErrKeyInUse    = errors.New("favorite key is used by at least one item")
	ErrKeyNotFound = errors.New("favorite key does not exist")
)

// mapRepoErr переводит ошибки хранилища в ошибки сервиса, остальные пропускает как есть.
func mapRepoErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repo.ErrKeyInUse):
		return ErrKeyInUse
	case errors.Is(err, repo.ErrKeyNotFound):
		return ErrKeyNotFound
	}
	return err
}
