// Package view проецирует сущности хранилища в плоские записи для отображения.
package view

import "VaultKeeper/internal/model"

// FavoriteKey — отображаемая избранная ключевая фраза.
type FavoriteKey struct {
	Name   string `json:"name"`
	Secret string `json:"secret"`
	Hint   string `json:"hint"`
}

// Item — плоская запись любого варианта. Заполнены только поля,
// относящиеся к Type; ссылка на ключ заменена его именем.
type Item struct {
	Name  string         `json:"name"`
	Notes string         `json:"notes"`
	Type  model.ItemType `json:"type"`

	Key string `json:"key,omitempty"`

	// login
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`

	// card, identity
	Number    string `json:"number,omitempty"`
	ExpiresOn string `json:"expires_on,omitempty"`

	// card
	Holder       string `json:"holder,omitempty"`
	SecurityCode string `json:"security_code,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`

	// identity
	FullName string `json:"full_name,omitempty"`
	BirthOn  string `json:"birth_on,omitempty"`
	IssuedOn string `json:"issued_on,omitempty"`

	// secret
	Secret string `json:"secret,omitempty"`
}

// FromFavoriteKey строит отображение ключа.
func FromFavoriteKey(k model.FavoriteKey) FavoriteKey {
	return FavoriteKey{Name: k.Name, Secret: k.Secret, Hint: k.Hint}
}

// FromFavoriteKeys строит отображения в том же порядке.
func FromFavoriteKeys(keys []model.FavoriteKey) []FavoriteKey {
	res := make([]FavoriteKey, 0, len(keys))
	for _, k := range keys {
		res = append(res, FromFavoriteKey(k))
	}
	return res
}

// FromItem строит отображение записи по её дискриминанту.
func FromItem(it model.Item) Item {
	v := Item{Name: it.Name, Notes: it.Note, Type: it.Type}
	switch it.Type {
	case model.ItemLogin:
		v.Key = it.KeyName()
		v.Email = it.Login.Email
		v.Username = it.Login.Username
		v.URL = it.Login.URL
	case model.ItemCard:
		v.Key = it.KeyName()
		v.Number = it.Card.Number
		v.Holder = it.Card.Holder
		v.SecurityCode = it.Card.SecurityCode
		v.ExpiresOn = it.Card.ExpiresOn.String()
		v.Address = it.Card.Address
		v.Phone = it.Card.Phone
	case model.ItemIdentity:
		v.Number = it.Identity.Number
		v.FullName = it.Identity.FullName
		v.BirthOn = it.Identity.BirthOn.String()
		v.IssuedOn = it.Identity.IssuedOn.String()
		v.ExpiresOn = it.Identity.ExpiresOn.String()
	case model.ItemSecret:
		v.Key = it.KeyName()
		v.Secret = it.Secret.Payload
	}
	return v
}

// FromItems строит отображения в том же порядке.
func FromItems(items []model.Item) []Item {
	res := make([]Item, 0, len(items))
	for _, it := range items {
		res = append(res, FromItem(it))
	}
	return res
}
