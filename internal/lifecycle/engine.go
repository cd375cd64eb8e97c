package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"visitation-backend/internal/dates"
	"visitation-backend/internal/model"
	"visitation-backend/internal/store"
)

// Live status values. Stored upper-case; compared case-insensitively because
// callers send mixed case.
const (
	StatusScheduled = "SCHEDULED"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// Archive labels recording why a meeting was archived.
const (
	LabelCompleted            = "Completed"
	LabelCancelled            = "Cancelled"
	LabelAutoCompleted        = "AUTO_COMPLETED"
	LabelStartupAutoCompleted = "STARTUP_AUTO_COMPLETED"
)

// autoCompleteRemarks replaces the meeting's remarks when the sweep archives
// it past its date.
const autoCompleteRemarks = "Auto-marked as completed (past date)."

// ErrNotFound reports that an operation referenced a live meeting id that
// does not exist.
var ErrNotFound = errors.New("meeting not found")

// Engine owns the visitor-meeting lifecycle: scheduling, rescheduling,
// status transitions, and the move into the archive table once a meeting
// reaches its terminal state.
type Engine struct {
	store store.Store
}

// NewEngine creates a lifecycle engine on top of the given store.
func NewEngine(s store.Store) *Engine {
	return &Engine{store: s}
}

// ListAll returns every live meeting.
func (e *Engine) ListAll(ctx context.Context) ([]model.Meeting, error) {
	return e.store.ListMeetings(ctx)
}

// ListByDate returns live meetings scheduled exactly on date.
func (e *Engine) ListByDate(ctx context.Context, date string) ([]model.Meeting, error) {
	return e.store.ListMeetingsByDate(ctx, date)
}

// ListUpcoming returns live meetings scheduled strictly after fromDate.
// A meeting on fromDate itself is not upcoming.
func (e *Engine) ListUpcoming(ctx context.Context, fromDate string) ([]model.Meeting, error) {
	return e.store.ListMeetingsAfter(ctx, fromDate)
}

// ListArchived returns every archived meeting.
func (e *Engine) ListArchived(ctx context.Context) ([]model.ArchivedMeeting, error) {
	return e.store.ListArchivedMeetings(ctx)
}

// Schedule persists a new meeting. Whatever status the caller supplied is
// discarded; every meeting starts out SCHEDULED. CreatedAt is stamped here
// and never touched again.
func (e *Engine) Schedule(ctx context.Context, m model.Meeting) (model.Meeting, error) {
	m.ID = 0
	m.Status = StatusScheduled
	if m.CreatedAt == "" {
		m.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := e.store.CreateMeeting(ctx, &m); err != nil {
		return model.Meeting{}, err
	}
	return m, nil
}

// Reschedule overwrites the mutable fields of an existing meeting. The
// status is deliberately left alone; only SetStatus transitions it.
func (e *Engine) Reschedule(ctx context.Context, id int64, updated model.Meeting) (model.Meeting, error) {
	existing, err := e.getMeeting(ctx, id)
	if err != nil {
		return model.Meeting{}, err
	}

	existing.VisitorName = updated.VisitorName
	existing.VisitorContact = updated.VisitorContact
	existing.InmateName = updated.InmateName
	existing.Purpose = updated.Purpose
	existing.ScheduledDate = updated.ScheduledDate
	existing.ScheduledTime = updated.ScheduledTime
	existing.Remarks = updated.Remarks

	if err := e.store.SaveMeeting(ctx, &existing); err != nil {
		return model.Meeting{}, err
	}
	return existing, nil
}

// Delete removes a live meeting. Deleting an id that does not exist is a
// no-op, not an error.
func (e *Engine) Delete(ctx context.Context, id int64) error {
	return e.store.DeleteMeeting(ctx, id)
}

// SetStatus overwrites a meeting's status, normalized to upper-case. When
// the caller's value is "completed" in any case, the meeting undergoes the
// archival transition instead: a snapshot labeled Completed is inserted into
// the archive and the live record deleted, atomically.
//
// Any other value, including "CANCELLED", leaves the meeting live; a
// cancelled meeting past its date is later picked up by the sweep and
// archived under the sweep's label. That mirrors the historical behavior of
// this service and is relied on by its operators.
func (e *Engine) SetStatus(ctx context.Context, id int64, status string) error {
	m, err := e.getMeeting(ctx, id)
	if err != nil {
		return err
	}

	m.Status = strings.ToUpper(status)
	if !strings.EqualFold(status, StatusCompleted) {
		return e.store.SaveMeeting(ctx, &m)
	}

	archived := snapshot(m, LabelCompleted, nil)
	return e.store.ArchiveMeeting(ctx, m, &archived)
}

// SweepExpired archives every live meeting whose scheduled date is strictly
// before today and whose status is not yet completed. Each archived copy
// carries the caller's label and fixed auto-completion remarks. It returns
// the number of meetings moved; zero is a normal outcome.
//
// Each meeting is moved in its own transaction, so a failed run leaves the
// already-moved meetings archived and the rest live; the next run simply
// re-selects whatever is still in the live table.
func (e *Engine) SweepExpired(ctx context.Context, today, label string) (int, error) {
	meetings, err := e.store.ListMeetings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to scan live meetings: %w", err)
	}

	count := 0
	for _, m := range meetings {
		if !expired(m, today) {
			continue
		}

		m.Status = StatusCompleted
		remarks := autoCompleteRemarks
		archived := snapshot(m, label, &remarks)
		if err := e.store.ArchiveMeeting(ctx, m, &archived); err != nil {
			return count, fmt.Errorf("sweep stopped at meeting %d: %w", m.ID, err)
		}
		log.Printf("Archived expired meeting %d (visitor %s, scheduled %s) as %s",
			m.ID, m.VisitorName, m.ScheduledDate, label)
		count++
	}
	return count, nil
}

// expired reports whether a meeting is past its scheduled date and not
// already marked completed.
func expired(m model.Meeting, today string) bool {
	return dates.Before(m.ScheduledDate, today) && !strings.EqualFold(m.Status, StatusCompleted)
}

// snapshot builds the archive copy of a meeting. It is the single place the
// field list is spelled out, shared by the explicit completion path and the
// sweep. A non-nil remarksOverride replaces the meeting's own remarks.
func snapshot(m model.Meeting, label string, remarksOverride *string) model.ArchivedMeeting {
	remarks := m.Remarks
	if remarksOverride != nil {
		remarks = *remarksOverride
	}
	return model.ArchivedMeeting{
		VisitorName:    m.VisitorName,
		VisitorContact: m.VisitorContact,
		InmateName:     m.InmateName,
		Purpose:        m.Purpose,
		ScheduledDate:  m.ScheduledDate,
		ScheduledTime:  m.ScheduledTime,
		Status:         label,
		Remarks:        remarks,
		CreatedAt:      m.CreatedAt,
	}
}

func (e *Engine) getMeeting(ctx context.Context, id int64) (model.Meeting, error) {
	m, err := e.store.GetMeeting(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Meeting{}, ErrNotFound
	}
	if err != nil {
		return model.Meeting{}, fmt.Errorf("failed to load meeting %d: %w", id, err)
	}
	return m, nil
}
