package model

import "time"

// ChatSessionModel mirrors the 'chat_sessions' table.
type ChatSessionModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	SessionID string  `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email     *string `gorm:"type:varchar(255);index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatSessionModel) TableName() string {
	return "chat_sessions"
}

// ChatMessageModel mirrors the 'chat_messages' table.
type ChatMessageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	SessionID string `gorm:"type:varchar(64);not null;index"`
	Role      string `gorm:"type:varchar(16);not null"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
