package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-management/backend/internal/catalog/repository"
	"library-management/backend/internal/catalog/store"
	"library-management/backend/internal/telemetry"
)

type captureEmitter struct {
	events []*telemetry.Event
}

func (c *captureEmitter) Emit(_ context.Context, e *telemetry.Event) error {
	c.events = append(c.events, e)
	return nil
}

func TestCatalogService_EmitsEventsForMutations(t *testing.T) {
	em := &captureEmitter{}
	rec, err := telemetry.NewRecorder(em, nil, nil)
	require.NoError(t, err)
	st, err := store.Open(context.Background(), repository.NewMemoryRepository())
	require.NoError(t, err)
	svc := NewCatalogService(st, fixedClock, rec)
	ctx := context.Background()

	_, err = svc.AddBook(ctx, "Dune", "Herbert", "978-0-1234-5678-9", 1965, "SF")
	require.NoError(t, err)
	_, err = svc.AddBook(ctx, "Dune", "Herbert", "978-0-1234-5678-9", 1965, "SF")
	require.Error(t, err)
	_, err = svc.AddUser(ctx, "Ada", "ada@example.org", "0123456789")
	require.NoError(t, err)
	_, err = svc.RemoveBook(ctx, 1)
	require.NoError(t, err)
	_, err = svc.RemoveBook(ctx, 1)
	require.NoError(t, err)

	var types []telemetry.EventType
	for _, e := range em.events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []telemetry.EventType{
		telemetry.EventBookAdded, telemetry.EventUserAdded, telemetry.EventBookRemoved,
	}, types)

	var meta map[string]string
	require.NoError(t, json.Unmarshal(em.events[0].Metadata, &meta))
	assert.Equal(t, ISBN13, meta["format"])
	assert.Equal(t, 1, em.events[0].BookID)
	assert.Equal(t, 1, em.events[1].UserID)
}
