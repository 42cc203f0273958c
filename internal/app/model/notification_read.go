package model

import (
	"time"
)

// NotificationRead records that an account acknowledged one derived
// notification. Notifications themselves are computed on demand; only the
// read-state persists.
type NotificationRead struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"not null;uniqueIndex:idx_notification_read_owner" json:"email"`
	NoticeID  string    `gorm:"type:varchar(40);not null;uniqueIndex:idx_notification_read_owner" json:"notice_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (NotificationRead) TableName() string {
	return "notification_reads"
}
