package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/repository"
	"github.com/udyogsetu/udyogsetu-backend/pkg/logger"
)

var ErrNotificationIDRequired = errors.New("notification id is required")

type NotificationService interface {
	ListNotifications(email string) ([]Notification, int, error)
	MarkRead(email, noticeID string) error
	MarkManyRead(email string, noticeIDs []string) (int, error)
}

type notificationService struct {
	profileRepo repository.ProfileRepository
	docRepo     repository.DocumentRepository
	readRepo    repository.NotificationReadRepository
}

func NewNotificationService(
	profileRepo repository.ProfileRepository,
	docRepo repository.DocumentRepository,
	readRepo repository.NotificationReadRepository,
) NotificationService {
	return &notificationService{
		profileRepo: profileRepo,
		docRepo:     docRepo,
		readRepo:    readRepo,
	}
}

// ListNotifications derives the current notice list and annotates each with
// its read mark. The second return value is the unread count.
func (s *notificationService) ListNotifications(email string) ([]Notification, int, error) {
	email = NormalizeEmail(email)

	var profile *model.BusinessProfile
	found, err := s.profileRepo.FindByEmail(email)
	if err == nil {
		profile = found
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	docs, err := s.docRepo.ListByEmail(email)
	if err != nil {
		return nil, 0, err
	}

	readIDs, err := s.readRepo.GetReadIDs(email)
	if err != nil {
		return nil, 0, err
	}

	notifications := DeriveNotifications(profile, docs, readIDs)
	return notifications, CountUnread(notifications), nil
}

func (s *notificationService) MarkRead(email, noticeID string) error {
	if noticeID == "" {
		return ErrNotificationIDRequired
	}
	email = NormalizeEmail(email)

	if err := s.readRepo.MarkRead(email, noticeID); err != nil {
		logger.Error("Failed to mark notification as read", err, map[string]interface{}{
			"email":     email,
			"notice_id": noticeID,
		})
		return err
	}
	return nil
}

// MarkManyRead records read marks for the given ids and returns how many
// were submitted. Unknown ids are accepted; a mark for a notice that later
// reappears keeps it read.
func (s *notificationService) MarkManyRead(email string, noticeIDs []string) (int, error) {
	email = NormalizeEmail(email)

	if len(noticeIDs) == 0 {
		return 0, nil
	}
	if err := s.readRepo.MarkManyRead(email, noticeIDs); err != nil {
		logger.Error("Failed to mark notifications as read", err, map[string]interface{}{
			"email": email,
			"count": len(noticeIDs),
		})
		return 0, err
	}
	return len(noticeIDs), nil
}
