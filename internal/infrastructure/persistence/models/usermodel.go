package models

// UserModel is the read-only user table this service joins against for
// display names and role resolution.
type UserModel struct {
	ID     uint   `gorm:"primaryKey"`
	Name   string `gorm:"size:100;not null"`
	RoleID uint   `gorm:"column:role_id;not null;index"`
}

func (UserModel) TableName() string {
	return "users"
}

// RoleModel holds role codes; the delete guard requires code ADMIN.
type RoleModel struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"size:20;uniqueIndex;not null"`
}

func (RoleModel) TableName() string {
	return "roles"
}

// ClientModel is the client table; tickets carry a NOT NULL client
// reference defaulted to the lowest client id when the caller supplies none.
type ClientModel struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}

func (ClientModel) TableName() string {
	return "clients"
}
