package planner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agribot/entities"
)

func TestHTTPBackendFetchMonth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/irrigation", r.URL.Path)
		require.Equal(t, "3", r.URL.Query().Get("month"))
		require.Equal(t, "2024", r.URL.Query().Get("year"))
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]entities.IrrigationRecord{
			{RecordID: 1, Date: "2024-03-10", TimeSlot: "6:00-8:00", DurationMinutes: 120, Status: "scheduled"},
		})
	}))
	defer srv.Close()

	b := NewHTTPBackend(srv.URL, "tok-1")
	recs, err := b.FetchMonth(context.Background(), 2024, time.March)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "2024-03-10", recs[0].Date)
}

func TestHTTPBackendCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/irrigation/", r.URL.Path)
		var in entities.IrrigationRecord
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "2024-03-15", in.Date)
		assert.Equal(t, "scheduled", in.Status)
		in.RecordID = 42
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	b := NewHTTPBackend(srv.URL, "")
	created, err := b.Create(context.Background(), entities.IrrigationRecord{
		UserID: "u1", Date: "2024-03-15", TimeSlot: "6:00-8:00", DurationMinutes: 60, Status: "scheduled",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), created.RecordID)
}

func TestHTTPBackendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"boom"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	b := NewHTTPBackend(srv.URL, "")
	_, err := b.FetchMonth(context.Background(), 2024, time.March)
	assert.Error(t, err)
	_, err = b.FetchAll(context.Background())
	assert.Error(t, err)
	_, err = b.Create(context.Background(), entities.IrrigationRecord{Date: "2024-03-15"})
	assert.Error(t, err)
}

func TestHTTPBackendFetchAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/irrigation/list", r.URL.Path)
		json.NewEncoder(w).Encode([]entities.IrrigationRecord{
			{RecordID: 1, Date: "2024-03-10"},
			{RecordID: 2, Date: "2024-05-01"},
		})
	}))
	defer srv.Close()

	b := NewHTTPBackend(srv.URL, "")
	recs, err := b.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}
