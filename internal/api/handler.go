package api

import (
	"time"

	"visitation-backend/internal/dates"
	"visitation-backend/internal/lifecycle"
	"visitation-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	engine *lifecycle.Engine
	store  store.Store
	loc    *time.Location
	now    func() time.Time
}

// NewHandler creates a new API handler. loc is the facility time zone used
// to resolve "today" for the date-scoped listings.
func NewHandler(engine *lifecycle.Engine, s store.Store, loc *time.Location) *Handler {
	return &Handler{
		engine: engine,
		store:  s,
		loc:    loc,
		now:    time.Now,
	}
}

func (h *Handler) today() string {
	return dates.Format(h.now().In(h.loc))
}
