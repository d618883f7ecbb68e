package external

import (
	"context"
	"eventsite/common"
	"eventsite/modules/events"
	"eventsite/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestAPI(t *testing.T, h http.HandlerFunc) (*EventAPI, func()) {
	srv := httptest.NewServer(h)
	api := NewEventAPI(common.EventsConfig{
		Addr:        srv.URL + "/",
		ApiPrefix:   "/api/",
		ServiceName: "eventsite",
		Timeout:     2 * time.Second,
	})
	return api, srv.Close
}

func TestFetchUpcomingEvent(t *testing.T) {
	utils.SetTokenSecret("s3cret")
	defer utils.SetTokenSecret("")

	api, done := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/upcoming", r.URL.Path)
		assert.Equal(t, "hu", r.URL.Query().Get("lang"))
		assert.NotEmpty(t, r.Header.Get(utils.TokenNameInHeader))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"slug":"autumn-meetup","title":"Őszi találkozó","starts_at":"2026-11-07T18:00:00Z"}`))
	})
	defer done()

	ev, err := api.FetchUpcomingEvent(context.Background(), "hu")
	require.NoError(t, err)
	assert.Equal(t, "autumn-meetup", ev.Slug)
	assert.Equal(t, "hu", ev.Lang)
	assert.Equal(t, "Őszi találkozó", ev.Title)
	assert.Equal(t, 2026, ev.StartsAt.Year())
}

func TestFetchUpcomingEventEnvelope(t *testing.T) {
	api, done := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"slug":"spring-gala","lang":"en","title":"Spring Gala"}}`))
	})
	defer done()

	ev, err := api.FetchUpcomingEvent(context.Background(), "en")
	require.NoError(t, err)
	assert.Equal(t, "spring-gala", ev.Slug)
	assert.Equal(t, "en", ev.Lang)
}

func TestFetchUpcomingEventErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"not found", http.StatusNotFound, `{}`, events.ErrEventNotFound},
		{"server error", http.StatusInternalServerError, `oops`, events.ErrUpstream},
		{"bad json", http.StatusOK, `{"slug":`, events.ErrUpstream},
		{"unsafe slug", http.StatusOK, `{"slug":"../../admin"}`, events.ErrUpstream},
		{"empty slug", http.StatusOK, `{"data":null}`, events.ErrUpstream},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			api, done := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(c.status)
				_, _ = w.Write([]byte(c.body))
			})
			defer done()

			_, err := api.FetchUpcomingEvent(context.Background(), "hu")
			assert.Equal(t, c.want, errors.Cause(err))
		})
	}
}

func TestFetchUpcomingEventUnreachable(t *testing.T) {
	api, done := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {})
	done()

	_, err := api.FetchUpcomingEvent(context.Background(), "hu")
	assert.Equal(t, events.ErrUpstream, errors.Cause(err))
}
