package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"VaultKeeper/internal/config"
)

// Коды завершения процесса.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Dispatch выполняет команду args[0] и возвращает код завершения.
// Справка распознаётся только на месте имени команды: аргументы команд
// (секреты, подсказки, заметки) передаются как есть, даже если равны "--help".
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitUsage
	}

	name := strings.ToLower(args[0])
	if isHelp(name) {
		return help(args[1:])
	}

	c, ok := Get(name)
	if !ok {
		return unknown(name)
	}

	err := c.Run(ctx, cfg, args[1:])
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return ExitUsage
	default:
		logger.Debugw("command failed", "command", name, "error", err)
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return ExitError
	}
}

func isHelp(s string) bool {
	return s == "help" || s == "-h" || s == "--help"
}

// help печатает общую справку или usage одной команды.
func help(rest []string) int {
	if len(rest) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return ExitOK
	}
	c, ok := Get(strings.ToLower(rest[0]))
	if !ok {
		return unknown(rest[0])
	}
	fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
	return ExitOK
}

func unknown(name string) int {
	fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
	fmt.Fprint(Out, FormatGlobalUsage())
	return ExitUsage
}
