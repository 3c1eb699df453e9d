package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/assignwatch/assignwatch/internal/model"
)

func intPtr(v int) *int { return &v }

func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		in   model.Assignment
		want model.SubmissionStatus
	}{
		{
			name: "submitted late wins over quiz flag",
			in:   model.Assignment{HasSubmission: true, SubmissionLate: true, QuizSubmitted: intPtr(0)},
			want: model.StatusSubmittedLate,
		},
		{
			name: "quiz flag zero means not finalized",
			in:   model.Assignment{HasSubmission: true, QuizSubmitted: intPtr(0)},
			want: model.StatusQuizNotSubmitted,
		},
		{
			name: "quiz flag set means submitted",
			in:   model.Assignment{HasSubmission: true, QuizSubmitted: intPtr(1)},
			want: model.StatusSubmitted,
		},
		{
			name: "submission without quiz flag means submitted",
			in:   model.Assignment{HasSubmission: true},
			want: model.StatusSubmitted,
		},
		{
			name: "no submission past due",
			in:   model.Assignment{DueDateExceeded: true},
			want: model.StatusNotSubmitted,
		},
		{
			name: "no submission before due",
			in:   model.Assignment{},
			want: model.StatusInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.in))
		})
	}
}

// Every combination of the raw flags must map to exactly one of the five
// defined statuses without panicking, including a missing due date.
func TestClassify_Total(t *testing.T) {
	known := map[model.SubmissionStatus]bool{
		model.StatusSubmitted:        true,
		model.StatusSubmittedLate:    true,
		model.StatusQuizNotSubmitted: true,
		model.StatusNotSubmitted:     true,
		model.StatusInProgress:       true,
	}

	quizValues := []*int{nil, intPtr(0), intPtr(1)}
	due := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	dueValues := []*time.Time{nil, &due}

	for _, hasSubmission := range []bool{false, true} {
		for _, late := range []bool{false, true} {
			for _, quiz := range quizValues {
				for _, exceeded := range []bool{false, true} {
					for _, dueDate := range dueValues {
						a := model.Assignment{
							HasSubmission:   hasSubmission,
							SubmissionLate:  late,
							QuizSubmitted:   quiz,
							DueDateExceeded: exceeded,
							DueDate:         dueDate,
						}

						got := Classify(a)
						assert.True(t, known[got], "unknown status %q for %+v", got, a)
					}
				}
			}
		}
	}
}

func TestIsResolved(t *testing.T) {
	now := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		status model.SubmissionStatus
		due    *time.Time
		want   bool
	}{
		{"submitted", model.StatusSubmitted, &future, true},
		{"submitted late", model.StatusSubmittedLate, &future, true},
		{"in progress before due", model.StatusInProgress, &future, false},
		{"in progress past due", model.StatusInProgress, &past, true},
		{"quiz not submitted before due", model.StatusQuizNotSubmitted, &future, false},
		{"nil due date never resolves by time", model.StatusInProgress, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := model.Assignment{DueDate: tt.due}
			assert.Equal(t, tt.want, IsResolved(tt.status, a, now))
		})
	}
}
