package model

import "time"

// MagicLinkModel mirrors the 'magic_links' table.
type MagicLinkModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Token     string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email     string  `gorm:"type:varchar(255);not null"`
	Intent    string  `gorm:"type:varchar(32);not null"`
	SessionID *string `gorm:"type:varchar(64)"`
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (MagicLinkModel) TableName() string {
	return "magic_links"
}

// RateLimitModel mirrors the 'rate_limits' table. Rows persist indefinitely
// and are reused window over window.
type RateLimitModel struct {
	Key       string    `gorm:"type:varchar(255);primaryKey"`
	Count     int       `gorm:"not null;default:0"`
	WindowEnd time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RateLimitModel) TableName() string {
	return "rate_limits"
}
