package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"VaultKeeper/internal/config"
)

// withTempConfig возвращает конфиг с БД хранилища во временном каталоге теста.
func withTempConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{DatabaseDSN: filepath.Join(t.TempDir(), "keeper.db")}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// run выполняет команду через диспетчер и возвращает код и вывод
func run(t *testing.T, cfg *config.Config, args ...string) (int, string) {
	t.Helper()
	var code int
	out := withStdoutCapture(t, func() { code = Dispatch(context.Background(), cfg, args) })
	return code, out
}
