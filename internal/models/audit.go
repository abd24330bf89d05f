package models

import "time"

// RequestLog records one handled API request for auditing.
type RequestLog struct {
	ID        uint      `gorm:"primaryKey"`
	RequestID string    `gorm:"size:64;index"`
	Method    string    `gorm:"size:16"`
	Path      string    `gorm:"size:255"`
	Status    int       `gorm:"index"`
	ClientIP  string    `gorm:"size:64"`
	UserAgent string    `gorm:"size:255"`
	LatencyMS int64
	CreatedAt time.Time
}
