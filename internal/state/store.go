// Package state persists reminder configuration and per-assignment
// notification records in Redis.
package state

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"

	"github.com/assignwatch/assignwatch/internal/model"
)

const (
	keyEnabled  = "config:notifications:enabled"
	keyLeadTime = "config:notifications:lead_time_hours"

	notifiedKeyPrefix = "notified:"
)

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store is the notification state store. The reminder scheduler is its only
// writer for notified:* keys; settings keys are also written by the API.
type Store struct {
	client   cache
	defaults model.ReminderSettings
}

// New creates a state store backed by the given Redis client. defaults are
// returned when a settings key is missing.
func New(client cache, defaults model.ReminderSettings) *Store {
	return &Store{client: client, defaults: defaults}
}

// SeedDefaults writes the install-time settings exactly once. Keys that
// already exist are left untouched.
func (s *Store) SeedDefaults(ctx context.Context) error {
	if err := s.client.SetNX(ctx, keyEnabled, strconv.FormatBool(s.defaults.Enabled), 0).Err(); err != nil {
		return fmt.Errorf("failed to seed %s: %w", keyEnabled, err)
	}

	if err := s.client.SetNX(ctx, keyLeadTime, strconv.Itoa(s.defaults.LeadTimeHours), 0).Err(); err != nil {
		return fmt.Errorf("failed to seed %s: %w", keyLeadTime, err)
	}

	return nil
}

// Settings reads the current reminder configuration. Missing keys fall back
// to the install-time defaults.
func (s *Store) Settings(ctx context.Context, strategy retry.Strategy) (model.ReminderSettings, error) {
	settings := s.defaults

	enabled, err := s.client.GetWithRetry(ctx, strategy, keyEnabled)
	if err != nil && !errors.Is(err, redis.Nil) {
		return model.ReminderSettings{}, fmt.Errorf("failed to get %s: %w", keyEnabled, err)
	}
	if err == nil {
		parsed, parseErr := strconv.ParseBool(enabled)
		if parseErr != nil {
			return model.ReminderSettings{}, fmt.Errorf("failed to parse %s value %q: %w", keyEnabled, enabled, parseErr)
		}
		settings.Enabled = parsed
	}

	leadTime, err := s.client.GetWithRetry(ctx, strategy, keyLeadTime)
	if err != nil && !errors.Is(err, redis.Nil) {
		return model.ReminderSettings{}, fmt.Errorf("failed to get %s: %w", keyLeadTime, err)
	}
	if err == nil {
		parsed, parseErr := strconv.Atoi(leadTime)
		if parseErr != nil {
			return model.ReminderSettings{}, fmt.Errorf("failed to parse %s value %q: %w", keyLeadTime, leadTime, parseErr)
		}
		settings.LeadTimeHours = parsed
	}

	return settings, nil
}

// SetSettings writes the reminder configuration. Each key is independent, so
// a failed write leaves the previous value of that key in place.
func (s *Store) SetSettings(ctx context.Context, strategy retry.Strategy, settings model.ReminderSettings) error {
	if err := s.client.SetWithRetry(ctx, strategy, keyEnabled, strconv.FormatBool(settings.Enabled)); err != nil {
		return fmt.Errorf("failed to set %s: %w", keyEnabled, err)
	}

	if err := s.client.SetWithRetry(ctx, strategy, keyLeadTime, strconv.Itoa(settings.LeadTimeHours)); err != nil {
		return fmt.Errorf("failed to set %s: %w", keyLeadTime, err)
	}

	return nil
}

// LastNotifiedAt returns when a reminder was last sent for an assignment.
// ok is false when no record exists.
func (s *Store) LastNotifiedAt(ctx context.Context, strategy retry.Strategy, assignmentID int) (time.Time, bool, error) {
	v, err := s.client.GetWithRetry(ctx, strategy, notifiedKey(assignmentID))
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to get notification record for %d: %w", assignmentID, err)
	}

	epoch, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("failed to parse notification record %q for %d: %w", v, assignmentID, err)
	}

	return time.Unix(epoch, 0), true, nil
}

// MarkNotified records that a reminder was sent for an assignment at the
// given time.
func (s *Store) MarkNotified(ctx context.Context, strategy retry.Strategy, assignmentID int, at time.Time) error {
	err := s.client.SetWithRetry(ctx, strategy, notifiedKey(assignmentID), strconv.FormatInt(at.Unix(), 10))
	if err != nil {
		return fmt.Errorf("failed to mark %d notified: %w", assignmentID, err)
	}

	return nil
}

// ClearNotified removes the notification record for an assignment. Deleting
// an absent record is a no-op.
func (s *Store) ClearNotified(ctx context.Context, strategy retry.Strategy, assignmentID int) error {
	err := retry.Do(func() error {
		return s.client.Del(ctx, notifiedKey(assignmentID)).Err()
	}, strategy)
	if err != nil {
		return fmt.Errorf("failed to clear notification record for %d: %w", assignmentID, err)
	}

	return nil
}

func notifiedKey(assignmentID int) string {
	return notifiedKeyPrefix + strconv.Itoa(assignmentID)
}
