package commands

import (
	"context"
	"fmt"

	"VaultKeeper/internal/config"
	"VaultKeeper/internal/export"
	"VaultKeeper/internal/service"
)

type masterCmd struct{}

func (masterCmd) Name() string        { return "master" }
func (masterCmd) Description() string { return "Показать мастер-ключ хранилища" }
func (masterCmd) Usage() string       { return "master" }

func (masterCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		fmt.Fprintln(Out, k.MasterKey())
		return nil
	})
}

type genpassCmd struct{}

func (genpassCmd) Name() string        { return "genpass" }
func (genpassCmd) Description() string { return "Сгенерировать пароль" }
func (genpassCmd) Usage() string       { return "genpass [count]" }

func (genpassCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	n := 1
	if len(args) == 1 {
		v, err := parsePos(args[0])
		if err != nil || v == 0 {
			return ErrUsage
		}
		n = v
	}
	// генератору БД не нужна
	g := service.NewPasswordGenerator(nil)
	for range n {
		fmt.Fprintln(Out, g.Generate())
	}
	return nil
}

type reportCmd struct{}

func (reportCmd) Name() string        { return "report" }
func (reportCmd) Description() string { return "Отчёт о безопасности хранилища" }
func (reportCmd) Usage() string       { return "report" }

func (reportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		rep, err := k.Report(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "  logins:     %d\n", rep.Logins)
		fmt.Fprintf(Out, "  ids:        %d\n", rep.Identities)
		fmt.Fprintf(Out, "  cards:      %d\n", rep.Cards)
		fmt.Fprintf(Out, "  secrets:    %d\n", rep.Secrets)
		fmt.Fprintf(Out, "  insecure:   %d\n", rep.Insecure)
		fmt.Fprintf(Out, "  expiring:   %d\n", rep.Expiring)
		fmt.Fprintf(Out, "  reused:     %d\n", rep.Reused)
		fmt.Fprintf(Out, "  level:      %.2f\n", rep.Level)
		return nil
	})
}

type exportCmd struct{}

func (exportCmd) Name() string        { return "export" }
func (exportCmd) Description() string { return "Выгрузить хранилище в файл KeePass" }
func (exportCmd) Usage() string       { return "export <file.kdbx> [password]" }

// Run без пароля защищает выгрузку мастер-ключом хранилища.
func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		password := k.MasterKey()
		if len(args) == 2 {
			password = args[1]
		}
		keys, err := k.ListKeys(ctx)
		if err != nil {
			return err
		}
		items, err := k.ListItems(ctx)
		if err != nil {
			return err
		}
		if err := export.WriteFile(args[0], password, keys, items); err != nil {
			return err
		}
		logger.Infow("vault exported", "file", args[0], "keys", len(keys), "items", len(items))
		fmt.Fprintf(Out, "exported %d keys and %d items to %s\n", len(keys), len(items), args[0])
		return nil
	})
}

func init() {
	RegisterCmd(exportCmd{})
	RegisterCmd(masterCmd{})
	RegisterCmd(genpassCmd{})
	RegisterCmd(reportCmd{})
}
