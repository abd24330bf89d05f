package models

// Company represents a billed company. Code is a slug derived from the
// name at creation and never changes afterwards.
type Company struct {
	Code        string `gorm:"primaryKey;size:64" json:"code"`
	Name        string `gorm:"size:128;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}
