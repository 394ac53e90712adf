package ephemeris

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar/internal/domain"
	"stellar/internal/ports"
)

func TestLunarPosition(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/panchanga", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "1990-03-15", req["date"])

		json.NewEncoder(w).Encode(map[string]int{"sign": 5, "asterism": 14, "subdivision": 2})
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	got, err := c.LunarPosition(context.Background(), ports.BirthDetails{
		Date: "1990-03-15", Time: "06:30", Timezone: "Asia/Kolkata",
		Latitude: 13.08, Longitude: 80.27,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.BirthProfile{Sign: 5, Asterism: 14, Subdivision: 2}, got)
}

func TestLunarPositionRejectsOutOfRange(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]int{"sign": 14, "asterism": 1, "subdivision": 1})
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).LunarPosition(context.Background(), ports.BirthDetails{})
	require.Error(t, err)
	var oor *domain.OutOfRangeError
	assert.ErrorAs(t, err, &oor)
}

func TestLunarPositionUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := NewClient(ts.URL).LunarPosition(context.Background(), ports.BirthDetails{})
	assert.Error(t, err)
}
