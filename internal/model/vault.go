package model

// Vault — корневой агрегат хранилища. В базе всегда ровно одна запись.
type Vault struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	MasterKey string `gorm:"not null"` // хранится открытым текстом
}
