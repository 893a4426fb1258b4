package commands

import (
	"path/filepath"
	"strings"
	"testing"

	"VaultKeeper/internal/export"
	"VaultKeeper/internal/model"
	"VaultKeeper/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemArgs(t *testing.T) {
	in, err := parseItemArgs([]string{"login", "site", "a@b.co", "alice", "bank", "https://b.co", "notes"})
	require.NoError(t, err)
	assert.Equal(t, service.ItemInput{
		Type: model.ItemLogin, Name: "site", Email: "a@b.co", Username: "alice", Key: "bank", URL: "https://b.co", Notes: "notes",
	}, in)

	in, err = parseItemArgs([]string{"id", "passport", "123456", "Alice Doe", "1990-05-01", "2010-06-02", "2030-01-28", "mine"})
	require.NoError(t, err)
	assert.Equal(t, model.ItemIdentity, in.Type)
	assert.Equal(t, "Alice Doe", in.FullName)
	assert.Equal(t, "2030-01-28", in.ExpiresOn)

	in, err = parseItemArgs([]string{"card", "visa", "4111", "ALICE", "2030-01-28", "123", "bank", "Main 1", "+57 1", "card"})
	require.NoError(t, err)
	assert.Equal(t, "123", in.SecurityCode)
	assert.Equal(t, "+57 1", in.Phone)

	in, err = parseItemArgs([]string{"secret", "pin", "1234", "bank", "atm"})
	require.NoError(t, err)
	assert.Equal(t, model.ItemSecret, in.Type)
	assert.Equal(t, "1234", in.Secret)

	for _, bad := range [][]string{nil, {"note", "x"}, {"secret", "pin"}, {"login"}} {
		_, err := parseItemArgs(bad)
		assert.ErrorIs(t, err, ErrUsage)
	}
}

func TestItemCommands_Flow(t *testing.T) {
	cfg := withTempConfig(t)

	code, out := run(t, cfg, "key-add", "bank", "S3cret!pw", "usual")
	require.Equal(t, 0, code, out)

	code, out = run(t, cfg, "item-add", "login", "site", "alice@example.com", "alice", "bank", "https://example.com", "personal")
	require.Equal(t, 0, code, out)
	code, out = run(t, cfg, "item-add", "secret", "pin", "0000", "bank", "atm pin")
	require.Equal(t, 0, code, out)

	// ключ обязателен
	code, out = run(t, cfg, "item-add", "secret", "pin2", "0000", "missing", "atm pin")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "favorite key")

	code, out = run(t, cfg, "items")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "[0] pin  type=secret  key=bank")
	assert.Contains(t, out, "[1] site  type=login  key=bank")

	code, out = run(t, cfg, "item-get", "1")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "alice@example.com")
	assert.NotContains(t, out, "secret:")

	// ключ занят
	code, out = run(t, cfg, "key-del", "0")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "a favorite key in use cannot be deleted")

	// смена варианта освобождает ключ
	code, out = run(t, cfg, "item-edit", "0", "id", "pin", "123456", "Alice Doe", "1990-05-01", "2010-06-02", "2030-01-28", "mine")
	require.Equal(t, 0, code, out)
	code, out = run(t, cfg, "item-del", "1")
	require.Equal(t, 0, code, out)
	code, out = run(t, cfg, "key-del", "0")
	require.Equal(t, 0, code, out)

	code, out = run(t, cfg, "items")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "[0] pin  type=identity\n")
	assert.Contains(t, out, "Всего: 1")

	code, out = run(t, cfg, "item-del", "3")
	assert.Equal(t, 1, code)
	assert.True(t, strings.Contains(out, "item-del error"))
}

func TestVaultCommands(t *testing.T) {
	cfg := withTempConfig(t)

	code, out := run(t, cfg, "master")
	require.Equal(t, 0, code)
	assert.Equal(t, "clave", strings.TrimSpace(out))

	code, out = run(t, cfg, "genpass", "3")
	require.Equal(t, 0, code)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, p := range lines {
		assert.True(t, service.IsSecureSecret(p), p)
	}

	code, _ = run(t, cfg, "genpass", "0")
	assert.Equal(t, 2, code)

	code, out = run(t, cfg, "report")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "logins:     0")
	assert.Contains(t, out, "level:      1.00")
}

func TestExportCommand(t *testing.T) {
	cfg := withTempConfig(t)
	path := filepath.Join(t.TempDir(), "vault.kdbx")

	code, out := run(t, cfg, "key-add", "bank", "S3cret!pw", "usual")
	require.Equal(t, 0, code, out)
	code, out = run(t, cfg, "item-add", "secret", "pin", "0000", "bank", "atm pin")
	require.Equal(t, 0, code, out)

	code, out = run(t, cfg, "export", path)
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "exported 1 keys and 1 items")

	// по умолчанию выгрузка защищена мастер-ключом
	db, err := export.ReadFile(path, service.DefaultMasterKey)
	require.NoError(t, err)
	secrets := export.Entries(db, export.GroupSecrets)
	require.Len(t, secrets, 1)
	assert.Equal(t, "0000", secrets[0].GetContent(export.FieldPassword))

	code, out = run(t, cfg, "export", path, "other-pass")
	require.Equal(t, 0, code, out)
	_, err = export.ReadFile(path, "other-pass")
	require.NoError(t, err)

	code, _ = run(t, cfg, "export")
	assert.Equal(t, 2, code)
}
