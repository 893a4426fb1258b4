package commands

import (
	"VaultKeeper/internal/cli/bootstrap"
	"VaultKeeper/internal/config"
	"VaultKeeper/internal/service"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ErrUsage is returned by a command when arguments are invalid and usage should be shown.
var ErrUsage = errors.New("usage")

// Command represents a CLI subcommand.
type Command interface {
	// Name returns the command name as typed by the user, e.g. "key-add".
	Name() string
	// Description is a short human-readable description shown in help.
	Description() string
	// Usage returns the exact usage string, e.g. "key-add <name> <secret> <hint>".
	Usage() string
	// Run executes the command with provided args (without the command name).
	Run(ctx context.Context, cfg *config.Config, args []string) error
}

// registry holds available commands by name.
var registry = map[string]Command{}

// Out — общий writer для вывода CLI. По умолчанию os.Stdout, но в тестах может переназначаться.
var Out io.Writer = os.Stdout

// logger передаётся в сервисы хранилища; main заменяет его через SetLogger.
var logger = zap.NewNop().Sugar()

// SetLogger задаёт логгер для команд.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}

// RegisterCmd adds a command to the registry. Should be called from init() of each command.
func RegisterCmd(cmd Command) {
	registry[cmd.Name()] = cmd
}

// Get returns a command by name.
func Get(name string) (Command, bool) {
	c, ok := registry[name]
	return c, ok
}

// List returns all registered commands sorted by name.
func List() []Command {
	list := make([]Command, 0, len(registry))
	for _, c := range registry {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}

// FormatGlobalUsage builds a help text for all commands.
func FormatGlobalUsage() string {
	lines := []string{
		"VaultKeeper CLI",
		"",
		"Usage:",
		"  keeper [-d <db path or dsn>] [-debug] <command> [args]",
		"",
		"Positions refer to the current name-sorted listing: run keys/items before using them.",
		"",
		"Commands:",
	}
	for _, c := range List() {
		lines = append(lines, fmt.Sprintf("  %-44s %s", c.Usage(), c.Description()))
	}
	return strings.Join(lines, "\n") + "\n"
}

// withKeeper открывает хранилище на время fn.
func withKeeper(ctx context.Context, cfg *config.Config, fn func(k *service.Keeper) error) error {
	k, done, err := bootstrap.OpenKeeper(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = done() }()
	return fn(k)
}

// rejected превращает сообщение валидации в ошибку команды.
func rejected(msg string) error {
	if msg == "" {
		return nil
	}
	return errors.New(msg)
}

func parsePos(s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil || pos < 0 {
		return 0, ErrUsage
	}
	return pos, nil
}
