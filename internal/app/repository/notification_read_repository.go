package repository

import (
	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationReadRepository interface {
	GetReadIDs(email string) (map[string]bool, error)
	MarkRead(email, noticeID string) error
	MarkManyRead(email string, noticeIDs []string) error
}

type notificationReadRepository struct {
	db *gorm.DB
}

func NewNotificationReadRepository(db *gorm.DB) NotificationReadRepository {
	return &notificationReadRepository{db: db}
}

func (r *notificationReadRepository) GetReadIDs(email string) (map[string]bool, error) {
	var reads []model.NotificationRead
	if err := r.db.Where("email = ?", email).Find(&reads).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]bool, len(reads))
	for _, read := range reads {
		ids[read.NoticeID] = true
	}
	return ids, nil
}

func (r *notificationReadRepository) MarkRead(email, noticeID string) error {
	read := model.NotificationRead{Email: email, NoticeID: noticeID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&read).Error
}

func (r *notificationReadRepository) MarkManyRead(email string, noticeIDs []string) error {
	if len(noticeIDs) == 0 {
		return nil
	}
	reads := make([]model.NotificationRead, 0, len(noticeIDs))
	for _, id := range noticeIDs {
		reads = append(reads, model.NotificationRead{Email: email, NoticeID: id})
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reads).Error
}
