package model

import "time"

// ActivityType distinguishes regular assignments from quizzes on LEB2.
type ActivityType string

const (
	ActivityAssignment ActivityType = "ASM"
	ActivityQuiz       ActivityType = "QUZ"
)

// SubmissionStatus is the derived state of an assignment for one student.
type SubmissionStatus string

const (
	StatusSubmitted        SubmissionStatus = "submitted"
	StatusSubmittedLate    SubmissionStatus = "submitted_late"
	StatusQuizNotSubmitted SubmissionStatus = "quiz_not_submitted"
	StatusNotSubmitted     SubmissionStatus = "not_submitted"
	StatusInProgress       SubmissionStatus = "in_progress"
)

// Class represents a watched LEB2 class.
type Class struct {
	ID          int       `json:"id"`          // LEB2 class id
	Title       string    `json:"title"`       // class title shown on the dashboard
	Description string    `json:"description"` // class description shown on the dashboard
	StudentID   int       `json:"student_id"`  // student whose submissions are tracked
	CreatedAt   time.Time `json:"created_at"`  // timestamp when the watch was registered
}

// Assignment is the normalized view of a LEB2 assessment activity.
//
// The raw API payload carries loosely typed flags that are not present for
// every activity type; the leb2 adapter maps them into this record so the
// rest of the system never touches raw fields.
type Assignment struct {
	ID              int          `json:"id"`
	ClassID         int          `json:"class_id"`
	Type            ActivityType `json:"type"`
	Title           string       `json:"title"`
	DueDate         *time.Time   `json:"due_date"`          // nil when the activity has no due date
	HasSubmission   bool         `json:"has_submission"`    // a submission record exists
	SubmissionLate  bool         `json:"submission_late"`   // the submission was flagged late
	QuizSubmitted   *int         `json:"quiz_submitted"`    // raw quiz flag; nil when absent from the payload
	DueDateExceeded bool         `json:"due_date_exceeded"` // due date has passed as observed by LEB2
}

// ClassAssignments is the cached assignment list for one class, as written
// by the poller and consumed by the reminder scheduler.
type ClassAssignments struct {
	ClassID     int          `json:"class_id"`
	Assignments []Assignment `json:"assignments"`
	FetchedAt   time.Time    `json:"fetched_at"`
}

// ReminderSettings is the runtime reminder configuration kept in the state
// store. LeadTimeHours bounds the window before a due date during which
// reminders may fire.
type ReminderSettings struct {
	Enabled       bool `json:"enabled"`
	LeadTimeHours int  `json:"lead_time_hours"`
}
