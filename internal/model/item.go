package model

// ItemType — дискриминант варианта записи.
type ItemType string

const (
	ItemLogin    ItemType = "login"
	ItemCard     ItemType = "card"
	ItemIdentity ItemType = "identity"
	ItemSecret   ItemType = "secret"
)

// IsValid сообщает, известен ли тип.
func (t ItemType) IsValid() bool {
	switch t {
	case ItemLogin, ItemCard, ItemIdentity, ItemSecret:
		return true
	}
	return false
}

// UsesKey сообщает, должна ли запись этого типа ссылаться на избранный ключ.
func (t ItemType) UsesKey() bool {
	return t == ItemLogin || t == ItemCard || t == ItemSecret
}

// Item — запись хранилища. Все варианты живут в одной таблице:
// Type выбирает, какая группа колонок заполнена, остальные пустые.
type Item struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	VaultID int64  `gorm:"not null;uniqueIndex:idx_items_vault_name,priority:1"` // ссылка на vaults.id

	Type ItemType `gorm:"not null;index"`
	Name string   `gorm:"not null;uniqueIndex:idx_items_vault_name,priority:2"`
	Note string

	// Связи: у identity ключа нет
	KeyID *string      `gorm:"type:uuid;index"`
	Key   *FavoriteKey `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Login    LoginData    `gorm:"embedded;embeddedPrefix:login_"`
	Card     CardData     `gorm:"embedded;embeddedPrefix:card_"`
	Identity IdentityData `gorm:"embedded;embeddedPrefix:identity_"`
	Secret   SecretData   `gorm:"embedded;embeddedPrefix:secret_"`
}

// LoginData — данные учётной записи сайта.
type LoginData struct {
	Email    string
	Username string
	URL      string
}

// CardData — данные платёжной карты.
type CardData struct {
	Number       string
	Holder       string
	SecurityCode string
	ExpiresOn    Date `gorm:"index"`
	Address      string
	Phone        string
}

// IdentityData — данные документа.
type IdentityData struct {
	Number    string
	FullName  string
	BirthOn   Date
	IssuedOn  Date
	ExpiresOn Date `gorm:"index"`
}

// SecretData — произвольный секретный текст.
type SecretData struct {
	Payload string
}

// ExpiresOn возвращает дату окончания срока для вариантов, у которых она есть.
func (it *Item) ExpiresOn() (Date, bool) {
	switch it.Type {
	case ItemCard:
		return it.Card.ExpiresOn, true
	case ItemIdentity:
		return it.Identity.ExpiresOn, true
	}
	return Date{}, false
}

// KeyName возвращает имя связанного избранного ключа или пустую строку.
// Связь должна быть загружена (Preload("Key")).
func (it *Item) KeyName() string {
	if it.Key == nil {
		return ""
	}
	return it.Key.Name
}
