// Package leb2 is the HTTP client for the LEB2 assessment-activities API.
// It adapts the loosely typed raw payload into normalized model.Assignment
// records so raw-field ambiguity never leaks past this boundary.
package leb2

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/assignwatch/assignwatch/internal/model"
)

// dueDateLayout is the wall-clock format LEB2 uses for activity dates.
const dueDateLayout = "2006-01-02 15:04:05"

// Client fetches assessment activities for a student in a class.
type Client struct {
	baseURL string
	httpc   *http.Client
	loc     *time.Location
}

// NewClient creates a LEB2 API client. Due dates in responses carry no zone
// information, so they are interpreted in loc.
func NewClient(baseURL string, timeout time.Duration, loc *time.Location) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		loc:     loc,
	}
}

// rawActivity mirrors the relevant subset of the LEB2 activity payload.
// Flags that are not present for every activity type are pointers so that
// absence is distinguishable from zero.
type rawActivity struct {
	ID                        int     `json:"id"`
	ClassID                   int     `json:"class_id"`
	Type                      string  `json:"type"`
	Title                     string  `json:"title"`
	DueDate                   *string `json:"due_date"`
	ActivitySubmissionID      *int    `json:"activity_submission_id"`
	ActivitySubmissionIsLate  bool    `json:"activity_submission_is_late"`
	QuizSubmissionIsSubmitted *int    `json:"quiz_submission_is_submitted"`
	DueDateExceed             bool    `json:"due_date_exceed"`
}

// rootResponse is the envelope of the assessment-activities endpoint.
type rootResponse struct {
	Activities []rawActivity `json:"activities"`
}

// Assignments fetches the activities of a class for a student and returns
// the normalized records. Activities without a due date are dropped: they
// can never become reminder-eligible.
func (c *Client) Assignments(ctx context.Context, classID, studentID int) ([]model.Assignment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.activitiesURL(classID, studentID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities for class %d: %w", classID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s for class %d", resp.Status, classID)
	}

	var root rootResponse
	if err := json.NewDecoder(resp.Body).Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode activities for class %d: %w", classID, err)
	}

	assignments := make([]model.Assignment, 0, len(root.Activities))

	for _, raw := range root.Activities {
		if raw.DueDate == nil {
			continue
		}

		a, err := c.adapt(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to adapt activity %d: %w", raw.ID, err)
		}

		assignments = append(assignments, a)
	}

	return assignments, nil
}

func (c *Client) adapt(raw rawActivity) (model.Assignment, error) {
	a := model.Assignment{
		ID:              raw.ID,
		ClassID:         raw.ClassID,
		Type:            model.ActivityType(raw.Type),
		Title:           raw.Title,
		HasSubmission:   raw.ActivitySubmissionID != nil,
		SubmissionLate:  raw.ActivitySubmissionIsLate,
		QuizSubmitted:   raw.QuizSubmissionIsSubmitted,
		DueDateExceeded: raw.DueDateExceed,
	}

	if raw.DueDate != nil {
		due, err := time.ParseInLocation(dueDateLayout, *raw.DueDate, c.loc)
		if err != nil {
			return model.Assignment{}, fmt.Errorf("failed to parse due date %q: %w", *raw.DueDate, err)
		}

		a.DueDate = &due
	}

	return a, nil
}

func (c *Client) activitiesURL(classID, studentID int) string {
	q := url.Values{}
	q.Set("class_id", strconv.Itoa(classID))
	q.Set("student_id", strconv.Itoa(studentID))
	q.Set("filter_groups[0][filters][0][key]", "class_id")
	q.Set("filter_groups[0][filters][0][value]", strconv.Itoa(classID))
	q.Add("sort[]", "sequence")
	q.Add("sort[]", "id")
	q.Add("select[]", "activities:id,user_id,class_id,adv_starred,group_type,type,peer_assessment,is_allow_repeat,title,description,start_date,due_date,edit_group_mode,created_at")
	q.Add("includes[]", "user:sideload")
	q.Add("includes[]", "fileactivities:ids")
	q.Add("includes[]", "questions:ids")

	return fmt.Sprintf("%s/api/get/assessment-activities/student?%s", c.baseURL, q.Encode())
}
