package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/assignwatch/assignwatch/internal/api/respond"
	"github.com/assignwatch/assignwatch/internal/config"
	"github.com/assignwatch/assignwatch/internal/model"
	"github.com/assignwatch/assignwatch/internal/notify"
	"github.com/assignwatch/assignwatch/internal/repository/watch"
	"github.com/assignwatch/assignwatch/internal/service/reminder"
)

// reminderService defines the interface that the Handler depends on.
//
// It abstracts the business logic for managing watched classes, reading
// cached assignments and changing the reminder settings.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks
type reminderService interface {
	WatchClass(context.Context, model.Class) error
	ListClasses(context.Context) ([]model.Class, error)
	UnwatchClass(context.Context, int) error
	Assignments(context.Context, int) (model.ClassAssignments, error)
	Snapshots(context.Context) ([]model.ClassAssignments, error)
	Settings(context.Context, retry.Strategy) (model.ReminderSettings, error)
	SetSettings(context.Context, retry.Strategy, model.ReminderSettings) error
}

// Handler handles HTTP requests for watched classes, cached assignments,
// reminder settings and notification deep links.
type Handler struct {
	service   reminderService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(
	s reminderService,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// WatchRequest represents the JSON body expected when registering a class.
type WatchRequest struct {
	ClassID     int    `json:"class_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StudentID   int    `json:"student_id" validate:"required"`
}

// SettingsRequest represents the JSON body expected when updating reminder
// settings. The lead time is restricted to the supported windows.
type SettingsRequest struct {
	Enabled       *bool `json:"enabled" validate:"required"`
	LeadTimeHours int   `json:"lead_time_hours" validate:"required,oneof=6 12 24 48 72 168"`
}

// Watch handles HTTP POST requests to register a class for watching.
func (h *Handler) Watch(c *ginext.Context) {
	var req WatchRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	class := model.Class{
		ID:          req.ClassID,
		Title:       req.Title,
		Description: req.Description,
		StudentID:   req.StudentID,
	}

	if err := h.service.WatchClass(c.Request.Context(), class); err != nil {
		zlog.Logger.Error().Err(err).Int("class_id", class.ID).Msg("failed to watch class")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, class.ID)
}

// ListWatches handles HTTP GET requests for the list of watched classes.
func (h *Handler) ListWatches(c *ginext.Context) {
	classes, err := h.service.ListClasses(c.Request.Context())
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list classes")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, classes)
}

// Unwatch handles HTTP DELETE requests to stop watching a class.
func (h *Handler) Unwatch(c *ginext.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.service.UnwatchClass(c.Request.Context(), id); err != nil {
		if errors.Is(err, watch.ErrClassNotFound) {
			zlog.Logger.Warn().Int("class_id", id).Err(err).Msg("class not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("class not found"))
			return
		}

		zlog.Logger.Error().Err(err).Int("class_id", id).Msg("failed to unwatch class")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "class unwatched")
}

// Assignments handles HTTP GET requests for cached assignments. With a
// class_id query parameter it returns one class's snapshot, otherwise the
// snapshots of all watched classes.
func (h *Handler) Assignments(c *ginext.Context) {
	classIDStr := c.Query("class_id")

	if classIDStr == "" {
		snapshots, err := h.service.Snapshots(c.Request.Context())
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to list snapshots")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
			return
		}

		respond.OK(c.Writer, snapshots)
		return
	}

	classID, err := strconv.Atoi(classIDStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("classIDStr", classIDStr).Msg("failed to parse class_id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid class_id"))
		return
	}

	snap, err := h.service.Assignments(c.Request.Context(), classID)
	if err != nil {
		if errors.Is(err, watch.ErrSnapshotNotFound) {
			zlog.Logger.Warn().Int("class_id", classID).Err(err).Msg("snapshot not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("snapshot not found"))
			return
		}

		zlog.Logger.Error().Err(err).Int("class_id", classID).Msg("failed to get snapshot")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, snap)
}

// GetSettings handles HTTP GET requests for the live reminder settings.
func (h *Handler) GetSettings(c *ginext.Context) {
	settings, err := h.service.Settings(c.Request.Context(), h.cfg.Retry)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get settings")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, settings)
}

// UpdateSettings handles HTTP PUT requests to change the reminder settings.
func (h *Handler) UpdateSettings(c *ginext.Context) {
	var req SettingsRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	settings := model.ReminderSettings{
		Enabled:       *req.Enabled,
		LeadTimeHours: req.LeadTimeHours,
	}

	if err := h.service.SetSettings(c.Request.Context(), h.cfg.Retry, settings); err != nil {
		if errors.Is(err, reminder.ErrInvalidLeadTime) {
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid lead time"))
			return
		}

		zlog.Logger.Error().Err(err).Msg("failed to update settings")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, settings)
}

// Open handles clicks on a reminder's "view details" action: it parses the
// deterministic notification id and redirects to the assignment page on
// LEB2. Malformed ids are rejected without side effects.
func (h *Handler) Open(c *ginext.Context) {
	id := c.Param("id")

	activityType, classID, assignmentID, err := notify.ParseNotificationID(id)
	if err != nil {
		zlog.Logger.Warn().Interface("id", id).Msg("ignoring malformed notification id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid notification id"))
		return
	}

	c.Redirect(http.StatusFound, notify.DeepLink(h.cfg.LEB2.BaseURL, activityType, classID, assignmentID))
}
