package commands

import (
	"context"
	"fmt"
	"strings"

	"VaultKeeper/internal/config"
	"VaultKeeper/internal/model"
	"VaultKeeper/internal/model/view"
	"VaultKeeper/internal/service"
)

// itemFields — порядок позиционных аргументов для каждого варианта.
var itemFields = map[string][]string{
	"login":  {"name", "email", "username", "key", "url", "notes"},
	"card":   {"name", "number", "holder", "expires", "code", "key", "address", "phone", "notes"},
	"id":     {"name", "number", "full-name", "birth", "issued", "expires", "notes"},
	"secret": {"name", "secret", "key", "notes"},
}

func itemUsage() string {
	kinds := []string{"login", "card", "id", "secret"}
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, kind+" <"+strings.Join(itemFields[kind], "> <")+">")
	}
	return strings.Join(parts, " | ")
}

// parseItemArgs собирает ItemInput из "<вариант> <поля...>".
func parseItemArgs(args []string) (service.ItemInput, error) {
	if len(args) == 0 {
		return service.ItemInput{}, ErrUsage
	}
	kind, f := args[0], args[1:]
	names, ok := itemFields[kind]
	if !ok || len(f) != len(names) {
		return service.ItemInput{}, ErrUsage
	}
	switch kind {
	case "login":
		return service.ItemInput{
			Type: model.ItemLogin, Name: f[0], Email: f[1], Username: f[2], Key: f[3], URL: f[4], Notes: f[5],
		}, nil
	case "card":
		return service.ItemInput{
			Type: model.ItemCard, Name: f[0], Number: f[1], Holder: f[2], ExpiresOn: f[3],
			SecurityCode: f[4], Key: f[5], Address: f[6], Phone: f[7], Notes: f[8],
		}, nil
	case "id":
		return service.ItemInput{
			Type: model.ItemIdentity, Name: f[0], Number: f[1], FullName: f[2],
			BirthOn: f[3], IssuedOn: f[4], ExpiresOn: f[5], Notes: f[6],
		}, nil
	default:
		return service.ItemInput{Type: model.ItemSecret, Name: f[0], Secret: f[1], Key: f[2], Notes: f[3]}, nil
	}
}

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "Показать все записи" }
func (itemsCmd) Usage() string       { return "items" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		list, err := k.ListItems(ctx)
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Fprintln(Out, "Нет записей")
			return nil
		}
		for i, it := range list {
			key := ""
			if it.Key != "" {
				key = "  key=" + it.Key
			}
			fmt.Fprintf(Out, "[%d] %s  type=%s%s\n", i, it.Name, it.Type, key)
		}
		fmt.Fprintf(Out, "Всего: %d\n", len(list))
		return nil
	})
}

type itemGetCmd struct{}

func (itemGetCmd) Name() string        { return "item-get" }
func (itemGetCmd) Description() string { return "Показать запись по позиции" }
func (itemGetCmd) Usage() string       { return "item-get <pos>" }

func (itemGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	pos, err := parsePos(args[0])
	if err != nil {
		return err
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		it, err := k.GetItem(ctx, pos)
		if err != nil {
			return err
		}
		printItem(it)
		return nil
	})
}

// printItem печатает только заполненные поля записи.
func printItem(it view.Item) {
	fields := []struct{ label, value string }{
		{"name", it.Name},
		{"type", string(it.Type)},
		{"key", it.Key},
		{"email", it.Email},
		{"username", it.Username},
		{"url", it.URL},
		{"number", it.Number},
		{"holder", it.Holder},
		{"code", it.SecurityCode},
		{"expires", it.ExpiresOn},
		{"address", it.Address},
		{"phone", it.Phone},
		{"full name", it.FullName},
		{"birth", it.BirthOn},
		{"issued", it.IssuedOn},
		{"secret", it.Secret},
		{"notes", it.Notes},
	}
	for _, f := range fields {
		if f.value != "" {
			fmt.Fprintf(Out, "  %-10s %s\n", f.label+":", f.value)
		}
	}
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string        { return "item-add" }
func (itemAddCmd) Description() string { return "Добавить запись" }
func (itemAddCmd) Usage() string       { return "item-add " + itemUsage() }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	in, err := parseItemArgs(args)
	if err != nil {
		return err
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		msg, err := k.CreateItem(ctx, in)
		if err != nil {
			return err
		}
		if err := rejected(msg); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Created %s: %s\n", in.Type, in.Name)
		return nil
	})
}

type itemEditCmd struct{}

func (itemEditCmd) Name() string        { return "item-edit" }
func (itemEditCmd) Description() string { return "Перезаписать запись по позиции (вариант может смениться)" }
func (itemEditCmd) Usage() string       { return "item-edit <pos> " + itemUsage() }

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	pos, err := parsePos(args[0])
	if err != nil {
		return err
	}
	in, err := parseItemArgs(args[1:])
	if err != nil {
		return err
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		msg, err := k.EditItem(ctx, pos, in)
		if err != nil {
			return err
		}
		if err := rejected(msg); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Updated %s: %s\n", in.Type, in.Name)
		return nil
	})
}

type itemDelCmd struct{}

func (itemDelCmd) Name() string        { return "item-del" }
func (itemDelCmd) Description() string { return "Удалить запись по позиции" }
func (itemDelCmd) Usage() string       { return "item-del <pos>" }

func (itemDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	pos, err := parsePos(args[0])
	if err != nil {
		return err
	}
	return withKeeper(ctx, cfg, func(k *service.Keeper) error {
		if err := k.DeleteItem(ctx, pos); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Deleted")
		return nil
	})
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(itemGetCmd{})
	RegisterCmd(itemAddCmd{})
	RegisterCmd(itemEditCmd{})
	RegisterCmd(itemDelCmd{})
}
