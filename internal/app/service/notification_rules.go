package service

import (
	"fmt"

	"github.com/udyogsetu/udyogsetu-backend/internal/app/model"
)

// NotificationAction tells the dashboard where to send the user.
type NotificationAction struct {
	Tab  string `json:"tab"`
	Step *int   `json:"step,omitempty"`
}

// Notification is a derived dashboard notice. Notices are never stored;
// only their read marks are.
type Notification struct {
	ID       string             `json:"id"`
	Severity string             `json:"severity"`
	Title    string             `json:"title"`
	Message  string             `json:"message"`
	Action   NotificationAction `json:"action"`
	IsRead   bool               `json:"isRead"`
}

func intPtr(v int) *int { return &v }

// DeriveNotifications recomputes the notice list from current state. Rules
// run in a fixed order: profile completeness, then document pipeline
// status, then scheme matches, then the no-documents / verified tail.
func DeriveNotifications(profile *model.BusinessProfile, docs []model.Document, readIDs map[string]bool) []Notification {
	notifications := []Notification{}

	if profile == nil {
		notifications = append(notifications, Notification{
			ID:       "profile_missing",
			Severity: "high",
			Title:    "Business profile is incomplete",
			Message:  "Complete your business profile to unlock scheme mapping and validation workflows.",
			Action:   NotificationAction{Tab: "profile", Step: intPtr(0)},
		})
	} else if profile.PAN == "" || profile.Mobile == "" || profile.Sector == "" {
		notifications = append(notifications, Notification{
			ID:       "profile_fields_missing",
			Severity: "medium",
			Title:    "Some profile fields need attention",
			Message:  "PAN, mobile, and sector details are required for accurate recommendations.",
			Action:   NotificationAction{Tab: "profile", Step: intPtr(1)},
		})
	}

	var reviewCount, rejectedCount, verifiedCount int
	for _, doc := range docs {
		switch doc.Status {
		case model.DocumentStatusReview:
			reviewCount++
		case model.DocumentStatusRejected:
			rejectedCount++
		case model.DocumentStatusVerified:
			verifiedCount++
		}
	}

	if reviewCount > 0 {
		notifications = append(notifications, Notification{
			ID:       "docs_review",
			Severity: "medium",
			Title:    fmt.Sprintf("%d document(s) under review", reviewCount),
			Message:  "Review pending warnings and upload clearer/revised versions if needed.",
			Action:   NotificationAction{Tab: "documents"},
		})
	}

	if rejectedCount > 0 {
		notifications = append(notifications, Notification{
			ID:       "docs_rejected",
			Severity: "high",
			Title:    fmt.Sprintf("%d document(s) rejected", rejectedCount),
			Message:  "Resolve rejection reasons to proceed with scheme applications.",
			Action:   NotificationAction{Tab: "documents"},
		})
	}

	if profile != nil {
		matched := len(BuildRecommendations(profile))
		notifications = append(notifications, Notification{
			ID:       "schemes_update",
			Severity: "low",
			Title:    fmt.Sprintf("%d scheme(s) matched", matched),
			Message:  "Open the Schemes tab to review latest eligibility mapping.",
			Action:   NotificationAction{Tab: "schemes"},
		})
	}

	if len(docs) == 0 {
		notifications = append(notifications, Notification{
			ID:       "docs_none",
			Severity: "medium",
			Title:    "No documents uploaded yet",
			Message:  "Upload required compliance documents to start verification.",
			Action:   NotificationAction{Tab: "documents"},
		})
	} else if verifiedCount > 0 {
		notifications = append(notifications, Notification{
			ID:       "docs_verified",
			Severity: "low",
			Title:    fmt.Sprintf("%d document(s) verified", verifiedCount),
			Message:  "Verified documents are ready for scheme submission workflows.",
			Action:   NotificationAction{Tab: "documents"},
		})
	}

	for i := range notifications {
		notifications[i].IsRead = readIDs[notifications[i].ID]
	}
	return notifications
}

// CountUnread tallies notices not yet marked read.
func CountUnread(notifications []Notification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}
