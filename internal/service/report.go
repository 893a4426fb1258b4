package service

import (
	"VaultKeeper/internal/model"
	"VaultKeeper/internal/repo"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Параметры оценки безопасности.
const (
	expiryWindowDays = 90
	minSecureLen     = 8

	strengthWeight = 0.5
	expiryWeight   = 0.2
	reuseWeight    = 0.3
)

const (
	secureUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZÑÉÓÚÍÜ"
	secureLower = "abcdefghijklmnopqrstuvwxyzñéóúíü"
)

// Report — сводка безопасности хранилища.
type Report struct {
	Logins     int64   `json:"logins"`
	Identities int64   `json:"ids"`
	Cards      int64   `json:"cards"`
	Secrets    int64   `json:"secrets"`
	Insecure   int64   `json:"insecure"`
	Expiring   int64   `json:"expiring"`
	Reused     int64   `json:"reused"`
	Level      float64 `json:"level"`
}

// SecurityScorer считает Report заново при каждом вызове.
type SecurityScorer struct {
	vaultID int64
	keys    repo.FavoriteKeyRepository
	items   repo.ItemRepository
	now     func() time.Time
}

// NewSecurityScorer создаёт оценщик. now задаёт часы; nil — time.Now.
func NewSecurityScorer(vaultID int64, keys repo.FavoriteKeyRepository, items repo.ItemRepository, now func() time.Time) *SecurityScorer {
	if now == nil {
		now = time.Now
	}
	return &SecurityScorer{vaultID: vaultID, keys: keys, items: items, now: now}
}

// Report вычисляет уровень 0.5·sc + 0.2·v + 0.3·r, где
// sc — доля надёжных ключей, v — доля карт и документов, не истекающих в ближайшие 90 дней,
// r — 1.0, 0.5 или 0.0 по максимальному числу записей на один ключ (≤1, 2–3, >3).
func (s *SecurityScorer) Report(ctx context.Context) (Report, error) {
	var rep Report
	counts := []struct {
		t   model.ItemType
		dst *int64
	}{
		{model.ItemLogin, &rep.Logins},
		{model.ItemIdentity, &rep.Identities},
		{model.ItemCard, &rep.Cards},
		{model.ItemSecret, &rep.Secrets},
	}
	for _, c := range counts {
		n, err := s.items.CountByType(ctx, s.vaultID, c.t)
		if err != nil {
			return Report{}, fmt.Errorf("count %s items: %w", c.t, err)
		}
		*c.dst = n
	}

	cutoff := model.DateOf(s.now()).AddDays(expiryWindowDays)
	expiring, err := s.items.CountExpiringBefore(ctx, s.vaultID, cutoff)
	if err != nil {
		return Report{}, fmt.Errorf("count expiring items: %w", err)
	}
	rep.Expiring = expiring

	expirable := rep.Cards + rep.Identities
	v := 1.0
	if expirable > 0 {
		v = float64(expirable-expiring) / float64(expirable)
	}

	keys, err := s.keys.List(ctx, s.vaultID)
	if err != nil {
		return Report{}, fmt.Errorf("list favorite keys: %w", err)
	}
	var maxRefs, secure int64
	for _, k := range keys {
		refs, err := s.keys.CountReferences(ctx, k.ID)
		if err != nil {
			return Report{}, fmt.Errorf("count references of %q: %w", k.Name, err)
		}
		if refs > 1 {
			rep.Reused++
		}
		maxRefs = max(maxRefs, refs)
		if IsSecureSecret(k.Secret) {
			secure++
		}
	}

	r := 1.0
	switch {
	case maxRefs > 3:
		r = 0.0
	case maxRefs > 1:
		r = 0.5
	}

	sc := 1.0
	if total := int64(len(keys)); total > 0 {
		sc = float64(secure) / float64(total)
		rep.Insecure = total - secure
	}

	rep.Level = strengthWeight*sc + expiryWeight*v + reuseWeight*r
	return rep, nil
}

// IsSecureSecret: не короче 8 символов, есть цифра, заглавная и строчная буквы,
// спецсимвол из SpecialChars и нет пробелов.
func IsSecureSecret(secret string) bool {
	return utf8.RuneCountInString(secret) >= minSecureLen &&
		strings.ContainsAny(secret, DigitChars) &&
		strings.ContainsAny(secret, secureUpper) &&
		strings.ContainsAny(secret, secureLower) &&
		strings.ContainsAny(secret, SpecialChars) &&
		!strings.Contains(secret, " ")
}
