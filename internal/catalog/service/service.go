// Package service implements book and user management over the shared catalog store.
package service

import (
	"context"
	"encoding/json"
	"time"

	"library-management/backend/internal/catalog/store"
	"library-management/backend/internal/telemetry"
)

// Clock returns the current local time. Dates derived from it use its location.
type Clock func() time.Time

// CatalogService validates and applies book and user changes.
type CatalogService struct {
	store     *store.Store
	now       Clock
	telemetry *telemetry.Recorder
}

// NewCatalogService returns a CatalogService over st. now may be nil (time.Now); rec may be nil.
func NewCatalogService(st *store.Store, now Clock, rec *telemetry.Recorder) *CatalogService {
	if now == nil {
		now = time.Now
	}
	return &CatalogService{store: st, now: now, telemetry: rec}
}

func (s *CatalogService) emit(ctx context.Context, t telemetry.EventType, bookID, userID int, meta map[string]any) {
	e := telemetry.NewEvent(t)
	e.BookID, e.UserID = bookID, userID
	if len(meta) > 0 {
		e.Metadata, _ = json.Marshal(meta)
	}
	s.telemetry.Event(ctx, e)
}
