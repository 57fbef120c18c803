package model

import "time"

// LeadModel mirrors the 'quote_submissions' table.
type LeadModel struct {
	ID               int64   `gorm:"primaryKey;autoIncrement"`
	Name             string  `gorm:"type:varchar(255);not null"`
	Email            *string `gorm:"type:varchar(255)"`
	Phone            *string `gorm:"type:varchar(64)"`
	Message          *string `gorm:"type:text"`
	ProductInterest  *string `gorm:"type:varchar(255)"`
	ProductSlug      *string `gorm:"type:varchar(255)"`
	SeriesSlug       *string `gorm:"type:varchar(255)"`
	ChatSessionID    *string `gorm:"type:varchar(64);index"`
	Source           string  `gorm:"type:varchar(16)"`
	VisualizerImage  *string `gorm:"type:text"`
	VisualizerConfig *string `gorm:"type:text"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "quote_submissions"
}
