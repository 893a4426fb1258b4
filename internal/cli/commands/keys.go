package commands

import (
	"context"
	"fmt"

	"VaultKeeper/internal/config"
	"VaultKeeper/internal/service"
)

type keysCmd struct{}

func (keysCmd) Name() string        { return "keys" }
func (keysCmd) Description() string { return "Показать избранные ключи" }
func (keysCmd) Usage() string       { return "keys" }

func (keysCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		list, err := k.ListKeys(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(Out, "Нет ключей")
			return nil
		}
		for i, key := range list {
			fmt.Fprintf(Out, "[%d] %s  hint=%s\n", i, key.Name, key.Hint)
		}
		fmt.Fprintf(Out, "Всего: %d\n", len(list))
		return nil
	})
}

type keyGetCmd struct{}

func (keyGetCmd) Name() string        { return "key-get" }
func (keyGetCmd) Description() string { return "Показать ключ по позиции" }
func (keyGetCmd) Usage() string       { return "key-get <pos>" }

func (keyGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	pos, err := parsePos(args[0])
	if err != nil {
		return err
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		key, err := k.GetKey(ctx, pos)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "  name:   %s\n", key.Name)
		fmt.Fprintf(Out, "  secret: %s\n", key.Secret)
		fmt.Fprintf(Out, "  hint:   %s\n", key.Hint)
		return nil
	})
}

type keyAddCmd struct{}

func (keyAddCmd) Name() string        { return "key-add" }
func (keyAddCmd) Description() string { return "Добавить избранный ключ" }
func (keyAddCmd) Usage() string       { return "key-add <name> <secret> <hint>" }

func (keyAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	in := service.KeyInput{Name: args[0], Secret: args[1], Hint: args[2]}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		msg, err := k.CreateKey(ctx, in)
		if err != nil {
			return err
		}
		if err := rejected(msg); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Created key: %s\n", in.Name)
		return nil
	})
}

type keyEditCmd struct{}

func (keyEditCmd) Name() string        { return "key-edit" }
func (keyEditCmd) Description() string { return "Изменить ключ по позиции" }
func (keyEditCmd) Usage() string       { return "key-edit <pos> <name> <secret> <hint>" }

func (keyEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	pos, err := parsePos(args[0])
	if err != nil {
		return err
	}
	in := service.KeyInput{Name: args[1], Secret: args[2], Hint: args[3]}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		msg, err := k.EditKey(ctx, pos, in)
		if err != nil {
			return err
		}
		if err := rejected(msg); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Updated key: %s\n", in.Name)
		return nil
	})
}

type keyDelCmd struct{}

func (keyDelCmd) Name() string        { return "key-del" }
func (keyDelCmd) Description() string { return "Удалить неиспользуемый ключ по позиции" }
func (keyDelCmd) Usage() string       { return "key-del <pos>" }

func (keyDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	pos, err := parsePos(args[0])
	if err != nil {
		return err
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		msg, err := k.DeleteKey(ctx, pos)
		if err != nil {
			return err
		}
		if err := rejected(msg); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Deleted")
		return nil
	})
}

type keySecretCmd struct{}

func (keySecretCmd) Name() string        { return "key-secret" }
func (keySecretCmd) Description() string { return "Показать значение ключа по имени" }
func (keySecretCmd) Usage() string       { return "key-secret <name>" }

func (keySecretCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		s, err := k.KeySecret(ctx, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(Out, s)
		return nil
	})
}

func init() {
	RegisterCmd(keysCmd{})
	RegisterCmd(keyGetCmd{})
	RegisterCmd(keyAddCmd{})
	RegisterCmd(keyEditCmd{})
	RegisterCmd(keyDelCmd{})
	RegisterCmd(keySecretCmd{})
}
