package models

import "time"

// Invoice represents a single invoice issued to a company.
// PaidDate is non-nil only when the last paid-flag change set Paid to true.
type Invoice struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	CompCode string     `gorm:"size:64;index;not null" json:"comp_code"`
	Amt      float64    `gorm:"not null" json:"amt"`
	Paid     bool       `gorm:"not null;default:false" json:"paid"`
	AddDate  time.Time  `gorm:"not null" json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`

	Company Company `gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE" json:"-"`
}
