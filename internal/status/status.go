// Package status derives the submission status of an assignment from the
// normalized record. The mapping is pure and total: every reachable field
// combination classifies to exactly one status.
package status

import (
	"time"

	"github.com/assignwatch/assignwatch/internal/model"
)

// Classify maps an assignment to its submission status.
//
// Priority order, first match wins:
//  1. submission exists and is flagged late -> submitted_late
//  2. submission exists and the quiz flag is explicitly 0 -> quiz_not_submitted
//  3. submission exists -> submitted
//  4. no submission and the due date has been exceeded -> not_submitted
//  5. otherwise -> in_progress
func Classify(a model.Assignment) model.SubmissionStatus {
	if a.HasSubmission {
		if a.SubmissionLate {
			return model.StatusSubmittedLate
		}
		if a.QuizSubmitted != nil && *a.QuizSubmitted == 0 {
			return model.StatusQuizNotSubmitted
		}
		return model.StatusSubmitted
	}

	if a.DueDateExceeded {
		return model.StatusNotSubmitted
	}

	return model.StatusInProgress
}

// IsResolved reports whether an assignment needs no further reminders:
// it is submitted in any recognized form, or its due date has passed.
// A nil due date counts as not passed.
func IsResolved(s model.SubmissionStatus, a model.Assignment, now time.Time) bool {
	if s == model.StatusSubmitted || s == model.StatusSubmittedLate {
		return true
	}

	return a.DueDate != nil && a.DueDate.Before(now)
}
