package service

import (
	"VaultKeeper/internal/model"
	"VaultKeeper/internal/repo"
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// NewRecord — позиция-признак: проверяется создание, а не редактирование.
const NewRecord = -1

// Ограничения длины полей.
const (
	maxNameLen  = 255
	maxFieldLen = 255
	minNotesLen = 3
	maxNotesLen = 512
	maxURLLen   = 512
	maxIDDigits = 20
)

// Сообщения перекрёстных правил.
const (
	MsgNameTaken   = "an element with this name already exists"
	MsgKeyRequired = "a favorite key must be assigned"
	MsgKeyInUse    = "a favorite key in use cannot be deleted"
)

var (
	digitsRe = regexp.MustCompile(`^[0-9]+$`)
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9+_.-]+@[a-zA-Z0-9.-]+$`)
	holderRe = regexp.MustCompile(`^[A-ZÑÁÉÓÚÍÜ ]+$`)
	phoneRe  = regexp.MustCompile(`^(\(\+?\d+\)|\+?[\d A-Z]*)[\d A-Z]*(\([\d A-Z]+\))*[\d A-Z]*$`)

	urlSchemeRe = regexp.MustCompile(`^https?://`)
	urlHostRe   = regexp.MustCompile(`^(?:[a-zA-Z0-9][a-zA-Z0-9-]+[a-zA-Z0-9]|[a-zA-Z0-9]+)\.[^\s]{2,}$`)
)

// KeyInput — поля избранного ключа.
type KeyInput struct {
	Name   string `json:"name"`
	Secret string `json:"secret"`
	Hint   string `json:"hint"`
}

// LoginInput — поля записи login. Key — имя избранного ключа.
type LoginInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Key      string `json:"key"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`
}

// CardInput — поля платёжной карты. Даты в формате YYYY-MM-DD.
type CardInput struct {
	Name         string `json:"name"`
	Number       string `json:"number"`
	Holder       string `json:"holder"`
	ExpiresOn    string `json:"expires_on"`
	SecurityCode string `json:"security_code"`
	Key          string `json:"key"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
}

// IdentityInput — поля документа. Даты в формате YYYY-MM-DD.
type IdentityInput struct {
	Name      string `json:"name"`
	Number    string `json:"number"`
	FullName  string `json:"full_name"`
	BirthOn   string `json:"birth_on"`
	IssuedOn  string `json:"issued_on"`
	ExpiresOn string `json:"expires_on"`
	Notes     string `json:"notes"`
}

// SecretInput — поля секрета.
type SecretInput struct {
	Name   string `json:"name"`
	Secret string `json:"secret"`
	Key    string `json:"key"`
	Notes  string `json:"notes"`
}

// Validator проверяет кандидатов на создание и редактирование.
// Правила выполняются по порядку, возвращается сообщение первого нарушенного;
// пустая строка — данные корректны. error возвращается только при сбое хранилища
// или если позиция редактируемой записи вне списка (ErrNotFound).
// Validator ничего не изменяет, только читает хранилище.
type Validator struct {
	vaultID int64
	keys    repo.FavoriteKeyRepository
	items   repo.ItemRepository
}

// NewValidator создаёт валидатор поверх репозиториев хранилища vaultID.
func NewValidator(vaultID int64, keys repo.FavoriteKeyRepository, items repo.ItemRepository) *Validator {
	return &Validator{vaultID: vaultID, keys: keys, items: items}
}

// ValidateKey проверяет избранный ключ. pos — позиция редактируемого ключа или NewRecord.
func (v *Validator) ValidateKey(ctx context.Context, pos int, in KeyInput) (string, error) {
	if msg := firstFailure(
		length("name", in.Name, 1, maxNameLen),
		length("secret", in.Secret, 3, maxFieldLen),
		length("hint", in.Hint, 3, maxFieldLen),
	); msg != "" {
		return msg, nil
	}
	return v.keyNameFree(ctx, pos, in.Name)
}

// ValidateDeleteKey проверяет, что ключ на позиции pos ни одна запись не использует.
func (v *Validator) ValidateDeleteKey(ctx context.Context, pos int) (string, error) {
	k, err := v.keys.GetAt(ctx, v.vaultID, pos)
	if err != nil {
		return "", mapRepoErr(err)
	}
	refs, err := v.keys.CountReferences(ctx, k.ID)
	if err != nil {
		return "", fmt.Errorf("count key references: %w", err)
	}
	if refs > 0 {
		return MsgKeyInUse, nil
	}
	return "", nil
}

// ValidateLogin проверяет запись login.
func (v *Validator) ValidateLogin(ctx context.Context, pos int, in LoginInput) (string, error) {
	if msg := firstFailure(
		length("name", in.Name, 1, maxNameLen),
		length("username", in.Username, 1, maxFieldLen),
		length("notes", in.Notes, minNotesLen, maxNotesLen),
		matches(emailRe, in.Email, "the email does not have a valid format"),
		length("url", in.URL, 0, maxURLLen),
		func() string {
			if !validURL(in.URL) {
				return "the url does not have a valid format"
			}
			return ""
		},
	); msg != "" {
		return msg, nil
	}
	return v.itemCrossChecks(ctx, pos, in.Name, in.Key, true)
}

// ValidateCard проверяет платёжную карту.
func (v *Validator) ValidateCard(ctx context.Context, pos int, in CardInput) (string, error) {
	if msg := firstFailure(
		length("name", in.Name, 1, maxNameLen),
		length("holder", in.Holder, 3, maxFieldLen),
		matches(holderRe, in.Holder, "the holder must contain only uppercase letters and spaces"),
		length("notes", in.Notes, minNotesLen, maxNotesLen),
		matches(digitsRe, in.Number, "the number must contain only digits"),
		digits("number", in.Number, 3, maxFieldLen),
		matches(digitsRe, in.SecurityCode, "the security code must contain only digits"),
		digits("security code", in.SecurityCode, 3, 4),
		date("expiration date", in.ExpiresOn),
		length("phone", in.Phone, 3, maxFieldLen),
		matches(phoneRe, in.Phone, "the phone must contain a phone number, for example +57 (606) 7422736"),
		length("address", in.Address, 3, maxFieldLen),
	); msg != "" {
		return msg, nil
	}
	return v.itemCrossChecks(ctx, pos, in.Name, in.Key, true)
}

// ValidateIdentity проверяет документ. Ключ документу не нужен.
func (v *Validator) ValidateIdentity(ctx context.Context, pos int, in IdentityInput) (string, error) {
	if msg := firstFailure(
		length("name", in.Name, 1, maxNameLen),
		length("notes", in.Notes, minNotesLen, maxNotesLen),
		length("full name", in.FullName, 3, maxFieldLen),
		matches(digitsRe, in.Number, "the number must contain only digits"),
		digits("number", in.Number, 3, maxIDDigits),
		date("expiration date", in.ExpiresOn),
		date("issue date", in.IssuedOn),
		date("birth date", in.BirthOn),
	); msg != "" {
		return msg, nil
	}
	return v.itemCrossChecks(ctx, pos, in.Name, "", false)
}

// ValidateSecret проверяет секрет.
func (v *Validator) ValidateSecret(ctx context.Context, pos int, in SecretInput) (string, error) {
	if msg := firstFailure(
		length("name", in.Name, 1, maxNameLen),
		length("notes", in.Notes, minNotesLen, maxNotesLen),
		length("secret", in.Secret, 3, maxFieldLen),
	); msg != "" {
		return msg, nil
	}
	return v.itemCrossChecks(ctx, pos, in.Name, in.Key, true)
}

// itemCrossChecks — уникальность имени среди всех записей, затем наличие ключа.
func (v *Validator) itemCrossChecks(ctx context.Context, pos int, name, keyName string, needKey bool) (string, error) {
	check := pos == NewRecord
	if !check {
		cur, err := v.items.GetAt(ctx, v.vaultID, pos)
		if err != nil {
			return "", mapRepoErr(err)
		}
		check = cur.Name != name
	}
	if check {
		n, err := v.items.CountByName(ctx, v.vaultID, name)
		if err != nil {
			return "", fmt.Errorf("count items by name: %w", err)
		}
		if n > 0 {
			return MsgNameTaken, nil
		}
	}
	if !needKey {
		return "", nil
	}
	n, err := v.keys.CountByName(ctx, v.vaultID, keyName)
	if err != nil {
		return "", fmt.Errorf("count keys by name: %w", err)
	}
	if n < 1 {
		return MsgKeyRequired, nil
	}
	return "", nil
}

func (v *Validator) keyNameFree(ctx context.Context, pos int, name string) (string, error) {
	if pos != NewRecord {
		cur, err := v.keys.GetAt(ctx, v.vaultID, pos)
		if err != nil {
			return "", mapRepoErr(err)
		}
		if cur.Name == name {
			return "", nil
		}
	}
	n, err := v.keys.CountByName(ctx, v.vaultID, name)
	if err != nil {
		return "", fmt.Errorf("count keys by name: %w", err)
	}
	if n > 0 {
		return MsgNameTaken, nil
	}
	return "", nil
}

// rule возвращает сообщение нарушения или пустую строку.
type rule func() string

func firstFailure(rules ...rule) string {
	for _, r := range rules {
		if msg := r(); msg != "" {
			return msg
		}
	}
	return ""
}

// length проверяет длину в символах (а не байтах).
func length(field, value string, lo, hi int) rule {
	return bounded(field, value, lo, hi, "characters")
}

func digits(field, value string, lo, hi int) rule {
	return bounded(field, value, lo, hi, "digits")
}

func bounded(field, value string, lo, hi int, unit string) rule {
	return func() string {
		n := utf8.RuneCountInString(value)
		if n < lo {
			return fmt.Sprintf("the %s must not have less than %d %s", field, lo, unit)
		}
		if n > hi {
			return fmt.Sprintf("the %s must not have more than %d %s", field, hi, unit)
		}
		return ""
	}
}

func matches(re *regexp.Regexp, value, msg string) rule {
	return func() string {
		if !re.MatchString(value) {
			return msg
		}
		return ""
	}
}

func date(field, value string) rule {
	return func() string {
		if _, err := model.ParseDate(value); err != nil {
			return fmt.Sprintf("the %s must have the format YYYY-MM-DD, for example 2023-01-28", field)
		}
		return ""
	}
}

// validURL принимает http(s)://host.tld... и www.host.tld...
// Без www. хост после схемы не может начинаться с "www".
func validURL(s string) bool {
	rest := s
	hasScheme := false
	if loc := urlSchemeRe.FindStringIndex(s); loc != nil {
		rest = s[loc[1]:]
		hasScheme = true
	}
	if host, ok := strings.CutPrefix(rest, "www."); ok && urlHostRe.MatchString(host) {
		return true
	}
	if !hasScheme || strings.HasPrefix(rest, "www") {
		return false
	}
	return urlHostRe.MatchString(rest)
}

// isPrecondition сообщает, что ошибка — нарушение предусловия, а не сбой хранилища.
func isPrecondition(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrKeyInUse) || errors.Is(err, ErrKeyNotFound)
}
