package model

// FavoriteKey — именованный многократно используемый секрет с подсказкой.
type FavoriteKey struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	VaultID int64  `gorm:"not null;uniqueIndex:idx_favorite_keys_vault_name,priority:1"` // ссылка на vaults.id

	Name   string `gorm:"not null;uniqueIndex:idx_favorite_keys_vault_name,priority:2"`
	Secret string `gorm:"not null"`
	Hint   string `gorm:"not null"`
}
