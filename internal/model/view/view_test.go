package view

import (
	"VaultKeeper/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromItem_ProjectsOnlyVariantFields(t *testing.T) {
	key := &model.FavoriteKey{Name: "bank"}
	exp := model.NewDate(2030, time.January, 28)

	login := FromItem(model.Item{
		Type:  model.ItemLogin,
		Name:  "site",
		Note:  "notes",
		Key:   key,
		Login: model.LoginData{Email: "a@b.co", Username: "alice", URL: "https://example.com"},
		// поля другого варианта не попадают в отображение
		Secret: model.SecretData{Payload: "stale"},
	})
	assert.Equal(t, Item{
		Name: "site", Notes: "notes", Type: model.ItemLogin, Key: "bank",
		Email: "a@b.co", Username: "alice", URL: "https://example.com",
	}, login)

	card := FromItem(model.Item{
		Type: model.ItemCard,
		Name: "visa",
		Key:  key,
		Card: model.CardData{Number: "4111", Holder: "ALICE", SecurityCode: "123", ExpiresOn: exp, Address: "Main 1", Phone: "+57 1"},
	})
	assert.Equal(t, "bank", card.Key)
	assert.Equal(t, "2030-01-28", card.ExpiresOn)
	assert.Equal(t, "ALICE", card.Holder)
	assert.Equal(t, "+57 1", card.Phone)

	id := FromItem(model.Item{
		Type:     model.ItemIdentity,
		Name:     "passport",
		Key:      key,
		Identity: model.IdentityData{Number: "123", FullName: "Alice", BirthOn: model.NewDate(1990, time.May, 1), ExpiresOn: exp},
	})
	assert.Empty(t, id.Key)
	assert.Equal(t, "1990-05-01", id.BirthOn)
	assert.Empty(t, id.IssuedOn)
	assert.Equal(t, "2030-01-28", id.ExpiresOn)

	secret := FromItem(model.Item{Type: model.ItemSecret, Name: "pin", Secret: model.SecretData{Payload: "0000"}})
	assert.Empty(t, secret.Key)
	assert.Equal(t, "0000", secret.Secret)
}

func TestFromFavoriteKeys_KeepsOrder(t *testing.T) {
	got := FromFavoriteKeys([]model.FavoriteKey{
		{ID: "1", Name: "a", Secret: "s1", Hint: "h1"},
		{ID: "2", Name: "b", Secret: "s2", Hint: "h2"},
	})
	assert.Equal(t, []FavoriteKey{{Name: "a", Secret: "s1", Hint: "h1"}, {Name: "b", Secret: "s2", Hint: "h2"}}, got)

	assert.Empty(t, FromItems(nil))
}
