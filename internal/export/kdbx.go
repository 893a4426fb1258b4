// Package export выгружает хранилище в файл KeePass (KDBX).
package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"VaultKeeper/internal/model"
	"VaultKeeper/internal/model/view"

	gokeepasslib "github.com/tobischo/gokeepasslib/v3"
	w "github.com/tobischo/gokeepasslib/v3/wrappers"
)

// Имена групп в корне выгрузки.
const (
	GroupKeys     = "Favorite keys"
	GroupLogins   = "Logins"
	GroupCards    = "Cards"
	GroupIDs      = "Identities"
	GroupSecrets  = "Secrets"
	rootGroupName = "VaultKeeper"
)

// Стандартные поля записи KeePass.
const (
	FieldTitle    = "Title"
	FieldUserName = "UserName"
	FieldPassword = "Password"
	FieldURL      = "URL"
	FieldNotes    = "Notes"
)

// Build собирает базу KeePass из ключей и записей, защищённую паролем password.
// Для login и card в поле Password попадает секрет назначенного ключа.
func Build(password string, keys []view.FavoriteKey, items []view.Item) (*gokeepasslib.Database, error) {
	if password == "" {
		return nil, errors.New("export password must not be empty")
	}
	secrets := make(map[string]string, len(keys))
	for _, k := range keys {
		secrets[k.Name] = k.Secret
	}

	db := gokeepasslib.NewDatabase()
	db.Credentials = gokeepasslib.NewPasswordCredentials(password)

	root := newGroup(rootGroupName)
	groups := map[model.ItemType]*gokeepasslib.Group{}
	order := []model.ItemType{model.ItemLogin, model.ItemCard, model.ItemIdentity, model.ItemSecret}
	names := map[model.ItemType]string{
		model.ItemLogin:    GroupLogins,
		model.ItemCard:     GroupCards,
		model.ItemIdentity: GroupIDs,
		model.ItemSecret:   GroupSecrets,
	}
	for _, t := range order {
		g := newGroup(names[t])
		groups[t] = &g
	}

	keyGroup := newGroup(GroupKeys)
	for _, k := range keys {
		keyGroup.Entries = append(keyGroup.Entries, newEntry(
			value(FieldTitle, k.Name, false),
			value(FieldPassword, k.Secret, true),
			value(FieldNotes, k.Hint, false),
		))
	}

	for _, it := range items {
		g, ok := groups[it.Type]
		if !ok {
			return nil, fmt.Errorf("unknown item type %q", it.Type)
		}
		g.Entries = append(g.Entries, itemEntry(it, secrets[it.Key]))
	}

	root.Groups = append(root.Groups, keyGroup)
	for _, t := range order {
		root.Groups = append(root.Groups, *groups[t])
	}
	db.Content.Root = &gokeepasslib.RootData{Groups: []gokeepasslib.Group{root}}
	return db, nil
}

// WriteFile собирает базу и записывает её в path, перезаписывая файл.
func WriteFile(path, password string, keys []view.FavoriteKey, items []view.Item) error {
	db, err := Build(password, keys, items)
	if err != nil {
		return err
	}
	if err := db.LockProtectedEntries(); err != nil {
		return fmt.Errorf("lock protected entries: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file %q: %w", path, err)
	}
	if err := encode(f, db); err != nil {
		return fmt.Errorf("write export file %q: %w", path, err)
	}
	return nil
}

// encode пишет базу в wc и закрывает его; ошибка Close не теряется.
func encode(wc io.WriteCloser, db *gokeepasslib.Database) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close: %w", cerr)
		}
	}()
	if err := gokeepasslib.NewEncoder(wc).Encode(db); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadFile открывает выгрузку и разблокирует защищённые поля.
func ReadFile(path, password string) (*gokeepasslib.Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export file %q: %w", path, err)
	}
	defer f.Close()

	db := gokeepasslib.NewDatabase()
	db.Credentials = gokeepasslib.NewPasswordCredentials(password)
	if err := gokeepasslib.NewDecoder(f).Decode(db); err != nil {
		return nil, fmt.Errorf("decode export file %q: %w", path, err)
	}
	if err := db.UnlockProtectedEntries(); err != nil {
		return nil, fmt.Errorf("unlock protected entries: %w", err)
	}
	return db, nil
}

// Entries возвращает записи группы name из корня выгрузки.
func Entries(db *gokeepasslib.Database, name string) []gokeepasslib.Entry {
	if db == nil || db.Content == nil || db.Content.Root == nil {
		return nil
	}
	for _, root := range db.Content.Root.Groups {
		for _, g := range root.Groups {
			if g.Name == name {
				return g.Entries
			}
		}
	}
	return nil
}

func itemEntry(it view.Item, keySecret string) gokeepasslib.Entry {
	values := []gokeepasslib.ValueData{
		value(FieldTitle, it.Name, false),
		value(FieldNotes, it.Notes, false),
	}
	switch it.Type {
	case model.ItemLogin:
		values = append(values,
			value(FieldUserName, it.Username, false),
			value(FieldPassword, keySecret, true),
			value(FieldURL, it.URL, false),
			value("Email", it.Email, false),
			value("Key", it.Key, false),
		)
	case model.ItemCard:
		values = append(values,
			value(FieldUserName, it.Holder, false),
			value(FieldPassword, keySecret, true),
			value("Number", it.Number, true),
			value("SecurityCode", it.SecurityCode, true),
			value("ExpiresOn", it.ExpiresOn, false),
			value("Address", it.Address, false),
			value("Phone", it.Phone, false),
			value("Key", it.Key, false),
		)
	case model.ItemIdentity:
		values = append(values,
			value(FieldUserName, it.FullName, false),
			value("Number", it.Number, true),
			value("BirthOn", it.BirthOn, false),
			value("IssuedOn", it.IssuedOn, false),
			value("ExpiresOn", it.ExpiresOn, false),
		)
	case model.ItemSecret:
		values = append(values,
			value(FieldPassword, it.Secret, true),
			value("Key", it.Key, false),
		)
	}
	return newEntry(values...)
}

func newGroup(name string) gokeepasslib.Group {
	g := gokeepasslib.NewGroup()
	g.Name = name
	return g
}

func newEntry(values ...gokeepasslib.ValueData) gokeepasslib.Entry {
	e := gokeepasslib.NewEntry()
	e.Values = values
	return e
}

func value(key, content string, protected bool) gokeepasslib.ValueData {
	return gokeepasslib.ValueData{
		Key:   key,
		Value: gokeepasslib.V{Content: content, Protected: w.NewBoolWrapper(protected)},
	}
}
