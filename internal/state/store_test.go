package state

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/assignwatch/assignwatch/internal/mocks/state"
	"github.com/assignwatch/assignwatch/internal/model"
)

var defaults = model.ReminderSettings{Enabled: true, LeadTimeHours: 72}

func TestStore_Settings_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock, defaults)

	strategy := retry.Strategy{}

	// Nothing seeded yet; both keys miss and the install-time defaults win.
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "config:notifications:enabled").Return("", redis.Nil)
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "config:notifications:lead_time_hours").Return("", redis.Nil)

	settings, err := store.Settings(context.Background(), strategy)
	assert.NoError(t, err)
	assert.Equal(t, defaults, settings)
}

func TestStore_Settings_StoredValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock, defaults)

	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "config:notifications:enabled").Return("false", nil)
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "config:notifications:lead_time_hours").Return("24", nil)

	settings, err := store.Settings(context.Background(), strategy)
	assert.NoError(t, err)
	assert.Equal(t, model.ReminderSettings{Enabled: false, LeadTimeHours: 24}, settings)
}

func TestStore_SetSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock, defaults)

	strategy := retry.Strategy{}

	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "config:notifications:enabled", "false").Return(nil)
	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "config:notifications:lead_time_hours", "48").Return(nil)

	err := store.SetSettings(context.Background(), strategy, model.ReminderSettings{Enabled: false, LeadTimeHours: 48})
	assert.NoError(t, err)
}

func TestStore_LastNotifiedAt_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock, defaults)

	strategy := retry.Strategy{}

	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "notified:42").Return("", redis.Nil)

	_, ok, err := store.LastNotifiedAt(context.Background(), strategy, 42)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_MarkThenLastNotifiedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock, defaults)

	strategy := retry.Strategy{}
	at := time.Date(2025, 9, 15, 10, 0, 0, 0, time.UTC)

	cacheMock.EXPECT().SetWithRetry(gomock.Any(), strategy, "notified:42", "1757930400").Return(nil)
	cacheMock.EXPECT().GetWithRetry(gomock.Any(), strategy, "notified:42").Return("1757930400", nil)

	assert.NoError(t, store.MarkNotified(context.Background(), strategy, 42, at))

	last, ok, err := store.LastNotifiedAt(context.Background(), strategy, 42)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, last.Equal(at))
}

func TestStore_ClearNotified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock, defaults)

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	cacheMock.EXPECT().Del(gomock.Any(), "notified:42").Return(redis.NewIntResult(1, nil))

	assert.NoError(t, store.ClearNotified(context.Background(), strategy, 42))
}

func TestStore_SeedDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockcache(ctrl)
	store := New(cacheMock, defaults)

	cacheMock.EXPECT().SetNX(gomock.Any(), "config:notifications:enabled", "true", time.Duration(0)).
		Return(redis.NewBoolResult(true, nil))
	cacheMock.EXPECT().SetNX(gomock.Any(), "config:notifications:lead_time_hours", "72", time.Duration(0)).
		Return(redis.NewBoolResult(true, nil))

	assert.NoError(t, store.SeedDefaults(context.Background()))
}
