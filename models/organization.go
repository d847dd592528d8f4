package models

// Organization is the only entity of the directory.
// It carries a store-assigned ID and a free-form name.
type Organization struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

func (o *Organization) TableName() string {
	return "organizations"
}
