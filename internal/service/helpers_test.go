package service

import (
	"VaultKeeper/internal/repo"
	"context"
	"math/rand/v2"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fixedNow — часы тестов: 2024-01-10
var fixedNow = func() time.Time { return time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC) }

// newTestKeeper собирает Keeper поверх SQLite-файла во временном каталоге
func newTestKeeper(t *testing.T) *Keeper {
	t.Helper()
	db, err := repo.InitDB(filepath.Join(t.TempDir(), "keeper.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.CloseDB(db) })

	k, err := NewKeeper(
		context.Background(),
		repo.NewVaultRepository(db),
		repo.NewFavoriteKeyRepository(db),
		repo.NewItemRepository(db),
		zap.NewNop().Sugar(),
		Options{Rand: rand.New(rand.NewPCG(1, 2)), Now: fixedNow},
	)
	require.NoError(t, err)
	return k
}

func validKey(name string) KeyInput {
	return KeyInput{Name: name, Secret: "S3cret!pw", Hint: "usual"}
}

func validLogin(name, key string) LoginInput {
	return LoginInput{Name: name, Email: "alice@example.com", Username: "alice", Key: key, URL: "https://example.com", Notes: "personal"}
}

func validCard(name, key string) CardInput {
	return CardInput{
		Name:         name,
		Number:       "4111111111111111",
		Holder:       "ALICE DOE",
		ExpiresOn:    "2030-01-28",
		SecurityCode: "123",
		Key:          key,
		Address:      "Main St 1",
		Phone:        "+57 (606) 7422736",
		Notes:        "visa",
	}
}

func validIdentity(name string) IdentityInput {
	return IdentityInput{
		Name:      name,
		Number:    "1234567890",
		FullName:  "Alice Doe",
		BirthOn:   "1990-05-01",
		IssuedOn:  "2010-06-02",
		ExpiresOn: "2030-01-28",
		Notes:     "passport",
	}
}

func validSecret(name, key string) SecretInput {
	return SecretInput{Name: name, Secret: "0000 1111", Key: key, Notes: "atm pin"}
}

// mustOK проверяет, что операция прошла валидацию и сохранилась
func mustOK(t *testing.T, msg string, err error) {
	t.Helper()
	require.NoError(t, err)
	require.Empty(t, msg)
}

// accepted — то же для вызова, результат которого передаётся целиком
func accepted(t *testing.T) func(string, error) {
	t.Helper()
	return func(msg string, err error) {
		t.Helper()
		mustOK(t, msg, err)
	}
}
