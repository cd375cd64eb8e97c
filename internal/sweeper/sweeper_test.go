package sweeper

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"visitation-backend/config"
	"visitation-backend/internal/lifecycle"
	"visitation-backend/internal/model"
	"visitation-backend/internal/store"
)

func newTestSweeper(t *testing.T, enabled bool, now time.Time) (*Sweeper, *lifecycle.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.Meeting{}, &model.ArchivedMeeting{}))

	engine := lifecycle.NewEngine(store.NewGormStore(db))
	sw, err := New(&config.SweeperConfig{
		Enabled:  enabled,
		Schedule: "0 0 * * *",
		Timezone: "UTC",
	}, engine)
	require.NoError(t, err)
	sw.now = func() time.Time { return now }

	return sw, engine, db
}

// A meeting scheduled in the past is recovered by the startup pass and
// archived under the startup label.
func TestStartupPassRecoversExpiredMeetings(t *testing.T) {
	now := time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC)
	sw, engine, db := newTestSweeper(t, true, now)
	ctx := context.Background()

	_, err := engine.Schedule(ctx, model.Meeting{
		VisitorName:   "Farida Khan",
		InmateName:    "Vikram Singh",
		Purpose:       "Family visit",
		ScheduledDate: "2024-01-01",
		ScheduledTime: "09:00 AM",
	})
	require.NoError(t, err)

	count, err := sw.RunStartupPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	var liveCount int64
	db.Model(&model.Meeting{}).Count(&liveCount)
	assert.Equal(t, int64(0), liveCount)

	archived, err := engine.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, lifecycle.LabelStartupAutoCompleted, archived[0].Status)
	assert.Equal(t, "Auto-marked as completed (past date).", archived[0].Remarks)
}

func TestStartupPassLeavesCurrentMeetingsAlone(t *testing.T) {
	now := time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC)
	sw, engine, _ := newTestSweeper(t, true, now)
	ctx := context.Background()

	for _, date := range []string{"2024-01-05", "2024-01-06"} {
		_, err := engine.Schedule(ctx, model.Meeting{
			VisitorName:   "Farida Khan",
			InmateName:    "Vikram Singh",
			ScheduledDate: date,
		})
		require.NoError(t, err)
	}

	count, err := sw.RunStartupPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "today and future meetings are not expired")

	live, err := engine.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, live, 2)
}

func TestStartupPassDisabled(t *testing.T) {
	now := time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC)
	sw, engine, _ := newTestSweeper(t, false, now)
	ctx := context.Background()

	_, err := engine.Schedule(ctx, model.Meeting{
		VisitorName:   "Farida Khan",
		InmateName:    "Vikram Singh",
		ScheduledDate: "2024-01-01",
	})
	require.NoError(t, err)

	count, err := sw.RunStartupPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	live, err := engine.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, live, 1, "disabled sweeper must not touch the store")
}

func TestStartRejectsBadSchedule(t *testing.T) {
	now := time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC)
	sw, _, _ := newTestSweeper(t, true, now)
	sw.cfg.Schedule = "not a cron expression"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := sw.Start(ctx)
	assert.Error(t, err)
}

// "Today" is taken in the sweeper's configured zone, not the host zone.
func TestSweepUsesConfiguredTimezone(t *testing.T) {
	// 01:30 UTC on Jan 6 is still Jan 5 in New York.
	now := time.Date(2024, 1, 6, 1, 30, 0, 0, time.UTC)

	dsn := "file:tz_sweep_test?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.Meeting{}, &model.ArchivedMeeting{}))

	engine := lifecycle.NewEngine(store.NewGormStore(db))
	sw, err := New(&config.SweeperConfig{
		Enabled:  true,
		Schedule: "0 0 * * *",
		Timezone: "America/New_York",
	}, engine)
	require.NoError(t, err)
	sw.now = func() time.Time { return now }

	ctx := context.Background()
	_, err = engine.Schedule(ctx, model.Meeting{
		VisitorName:   "Farida Khan",
		InmateName:    "Vikram Singh",
		ScheduledDate: "2024-01-05",
	})
	require.NoError(t, err)

	count, err := sw.RunStartupPass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "Jan 5 is not yet past in the facility zone")
}
