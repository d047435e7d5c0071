package geo

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withServer points geoAPIURL at h for the duration of the test.
func withServer(t *testing.T, h http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	origURL := geoAPIURL
	geoAPIURL = server.URL
	t.Cleanup(func() { geoAPIURL = origURL })
}

// ---------------------------------------------------------------------------
// DetectLocation
// ---------------------------------------------------------------------------

func TestDetectLocation_Success(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ipAPIResponse{
			Status:   "success",
			Lat:      -6.2088,
			Lon:      106.8456,
			City:     "Jakarta",
			Country:  "Indonesia",
			Timezone: "Asia/Jakarta",
			Offset:   25200,
		})
	})

	loc, err := DetectLocation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, -6.2088, loc.Latitude)
	assert.Equal(t, 106.8456, loc.Longitude)
	assert.Equal(t, "Jakarta", loc.City)
	assert.Equal(t, "Indonesia", loc.Country)
	assert.Equal(t, "Asia/Jakarta", loc.Timezone)
	assert.Equal(t, 7.0, loc.OffsetHours())
	assert.Equal(t, Coordinate{Latitude: -6.2088, Longitude: 106.8456}, loc.Coordinate())
}

func TestDetectLocation_APIFailureStatus(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ipAPIResponse{Status: "fail", Message: "reserved range"})
	})

	_, err := DetectLocation(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved range")
}

func TestDetectLocation_HTTPError(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	_, err := DetectLocation(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestDetectLocation_InvalidJSON(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	})

	_, err := DetectLocation(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestDetectLocation_BadCoordinate(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ipAPIResponse{Status: "success", Lat: 123, Lon: 0})
	})

	_, err := DetectLocation(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLatitudeRange))
}

func TestDetectLocation_ConnectionRefused(t *testing.T) {
	origURL := geoAPIURL
	geoAPIURL = "http://127.0.0.1:1" // nothing listening
	defer func() { geoAPIURL = origURL }()

	_, err := DetectLocation(context.Background())
	assert.Error(t, err)
}

func TestDetectLocation_Cancelled(t *testing.T) {
	withServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ipAPIResponse{Status: "success"})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DetectLocation(ctx)
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// Coordinate
// ---------------------------------------------------------------------------

func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name string
		c    Coordinate
		want error
	}{
		{"default site", Coordinate{-6.786, 107.173}, nil},
		{"poles and antimeridian", Coordinate{90, -180}, nil},
		{"latitude too big", Coordinate{90.5, 0}, ErrLatitudeRange},
		{"latitude too small", Coordinate{-91, 0}, ErrLatitudeRange},
		{"longitude too big", Coordinate{0, 180.1}, ErrLongitudeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "-6.7860, 107.1730", Coordinate{-6.786, 107.173}.String())
}
