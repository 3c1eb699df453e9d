// Package notify builds the deterministic notification identity used for
// reminder deduplication and deep linking back into LEB2.
package notify

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/assignwatch/assignwatch/internal/model"
)

const idPrefix = "assignwatch"

var ErrInvalidNotificationID = errors.New("invalid notification id")

// NotificationID returns the deterministic reminder id for an assignment,
// e.g. "assignwatch-ASM-7-42". Re-dispatching with the same id is idempotent
// at the notification layer.
func NotificationID(t model.ActivityType, classID, assignmentID int) string {
	return fmt.Sprintf("%s-%s-%d-%d", idPrefix, t, classID, assignmentID)
}

// ParseNotificationID is the exact inverse of NotificationID. Malformed ids
// yield ErrInvalidNotificationID.
func ParseNotificationID(id string) (model.ActivityType, int, int, error) {
	parts := strings.Split(id, "-")
	if len(parts) != 4 || parts[0] != idPrefix {
		return "", 0, 0, ErrInvalidNotificationID
	}

	t := model.ActivityType(parts[1])
	if t != model.ActivityAssignment && t != model.ActivityQuiz {
		return "", 0, 0, ErrInvalidNotificationID
	}

	classID, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", 0, 0, ErrInvalidNotificationID
	}

	assignmentID, err := strconv.Atoi(parts[3])
	if err != nil {
		return "", 0, 0, ErrInvalidNotificationID
	}

	return t, classID, assignmentID, nil
}

// DeepLink returns the LEB2 page for an assignment. Regular assignments live
// under /activity, quizzes under /quiz.
func DeepLink(baseURL string, t model.ActivityType, classID, assignmentID int) string {
	section := "activity"
	if t == model.ActivityQuiz {
		section = "quiz"
	}

	return fmt.Sprintf("%s/class/%d/%s/%d", strings.TrimRight(baseURL, "/"), classID, section, assignmentID)
}

// DuePhrase renders the time remaining until a due date as a short relative
// phrase: "in N minutes", "in N hours", "tomorrow" or "in N days".
func DuePhrase(now, due time.Time) string {
	until := due.Sub(now)

	switch {
	case until <= 0:
		return "now"
	case until < time.Hour:
		m := int(until.Minutes())
		if m <= 1 {
			return "in 1 minute"
		}
		return fmt.Sprintf("in %d minutes", m)
	case until < 24*time.Hour:
		h := int(until.Hours())
		if h <= 1 {
			return "in 1 hour"
		}
		return fmt.Sprintf("in %d hours", h)
	default:
		days := int(until.Hours() / 24)
		if days == 1 {
			return "tomorrow"
		}
		return fmt.Sprintf("in %d days", days)
	}
}

// Body renders the human-readable reminder message for an assignment.
func Body(title string, now, due time.Time) string {
	return fmt.Sprintf("%q is due %s (%s).", title, DuePhrase(now, due), due.Format("Mon, 2 Jan 15:04"))
}
