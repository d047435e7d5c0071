package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smokyabdulrahman/hisab/internal/calendar"
	"github.com/smokyabdulrahman/hisab/internal/geo"
	"github.com/smokyabdulrahman/hisab/internal/ijtima"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Options{
		Site: prayer.Site{
			Coordinate:   &geo.Coordinate{Latitude: -6.786, Longitude: 107.173},
			Timezone:     7,
			UseElevation: true,
			Horizon:      prayer.HorizonStandard,
		},
		Registry: prometheus.NewRegistry(),
		Now: func() time.Time {
			return time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
		},
	})
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	s.Handler().ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// ---------------------------------------------------------------------------
// Health and metrics
// ---------------------------------------------------------------------------

func TestHealthz(t *testing.T) {
	w := get(t, newTestServer(t), "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	get(t, s, "/api/v1/schedule?date=2025-01-01")
	get(t, s, "/api/v1/qibla?latitude=95&longitude=0")

	w := get(t, s, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `hisab_http_requests_total{method="GET",route="/api/v1/schedule",status="200"} 1`)
	assert.Contains(t, body, `hisab_computations_total{kind="schedule",outcome="ok"} 1`)
	assert.Contains(t, body, `hisab_computations_total{kind="qibla",outcome="error"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/schedule", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

// ---------------------------------------------------------------------------
// Schedule / detail / qibla
// ---------------------------------------------------------------------------

func TestSchedule(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/schedule?date=2025-01-01")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ScheduleResponse](t, w)
	assert.Equal(t, "2025-01-01", resp.Date)
	require.Len(t, resp.Times, len(prayer.AllPrayerNames))

	times := map[string]string{}
	for _, e := range resp.Times {
		times[e.Name] = e.Time
	}
	assert.Equal(t, "04:14", times[prayer.Subuh])
	assert.Equal(t, "11:55", times[prayer.Dzuhur])
	assert.Equal(t, "18:10", times[prayer.Maghrib])
	assert.InDelta(t, 4.235417, resp.Raw.Subuh, 1e-5)
}

func TestSchedule_DefaultsToToday(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/schedule")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2025-01-01", decode[ScheduleResponse](t, w).Date)
}

func TestSchedule_Overrides(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/schedule?date=2025-01-01&ihtiyat=2&elevation=1000&horizon=standard")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[ScheduleResponse](t, w)
	assert.Equal(t, 2.0, resp.Site.Ihtiyat)
	for _, e := range resp.Times {
		if e.Name == prayer.Maghrib {
			assert.Equal(t, "18:16", e.Time)
		}
	}
}

func TestSchedule_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"bad date", "/api/v1/schedule?date=01-01-2025"},
		{"latitude alone", "/api/v1/schedule?latitude=-6"},
		{"latitude range", "/api/v1/schedule?latitude=95&longitude=0"},
		{"horizon", "/api/v1/schedule?horizon=flat"},
		{"timezone", "/api/v1/schedule?timezone=15"},
		{"not a number", "/api/v1/schedule?elevation=high"},
	}

	s := newTestServer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(t, s, tt.target)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode[map[string]string](t, w)["error"])
		})
	}
}

func TestDetail(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/detail?date=2025-01-01")
	require.Equal(t, http.StatusOK, w.Code)

	report := decode[prayer.Report](t, w)
	assert.Equal(t, 2460676.5, report.JulianDay)
	assert.Equal(t, "BL", report.QiblaDirection)
	assert.InDelta(t, 11.910707, report.Zawal, 1e-5)
}

func TestQibla(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/qibla")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[QiblaResponse](t, w)
	assert.InDelta(t, 295.24312035452925, resp.Bearing, 1e-6)
	assert.Equal(t, "BL", resp.Direction)
	assert.Equal(t, "295° 14' 35\"", resp.DMS)
}

// ---------------------------------------------------------------------------
// Calendar
// ---------------------------------------------------------------------------

func TestHijriToGregorian(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/hijri/to-gregorian?day=1&month=1&year=1447")
	require.Equal(t, http.StatusOK, w.Code)

	conv := decode[calendar.UrfiConversion](t, w)
	assert.Equal(t, "2025-06-27", conv.Date.Format(dateLayout))
	assert.Equal(t, "Jumat", conv.Weekday)
	assert.Equal(t, "Kliwon", conv.Pasaran)

	w = get(t, newTestServer(t), "/api/v1/hijri/to-gregorian?day=31&month=1&year=1447")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHijriFromGregorian(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/hijri/from-gregorian?date=2024-02-29")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, calendar.HijriDate{Day: 19, Month: 8, Year: 1445}, decode[calendar.HijriConversion](t, w).Hijri)

	w = get(t, newTestServer(t), "/api/v1/hijri/from-gregorian?date=2025-02-30")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnchored(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/calendar/anchored?date=2025-01-01")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[AnchoredResponse](t, w)
	assert.Equal(t, calendar.HijriDate{Day: 1, Month: 7, Year: 1446}, resp.Hijri)
	assert.Equal(t, "Rabu", resp.Weekday)
	assert.Equal(t, "Pon", resp.Pasaran)
}

func TestMonth(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/calendar/month?year=2025&month=1")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[MonthResponse](t, w)
	assert.Equal(t, 3, resp.Offset)
	assert.Len(t, resp.Days, 31)
	assert.Equal(t, "Rajab - Sya'ban 1446", resp.HijriSpan)

	w = get(t, newTestServer(t), "/api/v1/calendar/month")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Januari", decode[MonthResponse](t, w).Name)

	w = get(t, newTestServer(t), "/api/v1/calendar/month?year=2025&month=13")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTahlil(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/tahlil?day=10&month=1&year=1447")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Dates []calendar.Commemoration `json:"dates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Dates, 6)
	assert.Equal(t, "2025-07-06", resp.Dates[0].Gregorian.Format(dateLayout))
	assert.Equal(t, "2026-06-26", resp.Dates[5].Gregorian.Format(dateLayout))

	w = get(t, newTestServer(t), "/api/v1/tahlil?day=1&month=13&year=1447")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ---------------------------------------------------------------------------
// Ijtima
// ---------------------------------------------------------------------------

func TestIjtima(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/ijtima?epoch=1440&offset=7&month=9")
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[ijtima.Result](t, w)
	assert.Equal(t, 1, res.Request.Tier)
	assert.Equal(t, 107.173, res.Request.Observer.Longitude)
	assert.Equal(t, "Rabu", res.ConjunctionDay)
	assert.Equal(t, "Imkan Rukyat", res.Verdict)
	assert.Equal(t, "Kamis", res.EntryDay)
	require.NotNil(t, res.Official)
	assert.Equal(t, "2026-02-19", res.Official.Date.Format(dateLayout))
}

func TestIjtima_Invalid(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/ijtima?epoch=1440&offset=7&month=13")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "month 13"))
}

func TestIjtima_OutOfTableFallsBack(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/ijtima?epoch=1560&offset=7&month=9&tier=9")
	require.Equal(t, http.StatusOK, w.Code)

	res := decode[ijtima.Result](t, w)
	assert.Equal(t, 9, res.Request.Tier)
	assert.Equal(t, 4, res.Tier)
	assert.Equal(t, 7.0, res.Threshold)
	assert.Zero(t, res.Alamah.Epoch)
	assert.Len(t, res.Fallbacks, 2)
}

func TestUnknownRoute(t *testing.T) {
	w := get(t, newTestServer(t), "/api/v1/waris")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
