package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smokyabdulrahman/hisab/internal/calendar"
	"github.com/smokyabdulrahman/hisab/internal/geo"
	"github.com/smokyabdulrahman/hisab/internal/ijtima"
	"github.com/smokyabdulrahman/hisab/internal/prayer"
	"github.com/smokyabdulrahman/hisab/internal/qibla"
)

const dateLayout = "2006-01-02"

// siteQuery overrides parts of the server's default site.
type siteQuery struct {
	Latitude  *float64 `form:"latitude"`
	Longitude *float64 `form:"longitude"`
	Timezone  *float64 `form:"timezone"`
	Elevation *float64 `form:"elevation"`
	Ihtiyat   *float64 `form:"ihtiyat"`
	Horizon   string   `form:"horizon"`
	Date      string   `form:"date"`
}

type hijriQuery struct {
	Day   int `form:"day"`
	Month int `form:"month"`
	Year  int `form:"year"`
}

type monthQuery struct {
	Year  int `form:"year"`
	Month int `form:"month"`
}

type ijtimaQuery struct {
	Epoch     int      `form:"epoch"`
	Offset    int      `form:"offset"`
	Month     int      `form:"month"`
	Tier      int      `form:"tier"`
	Latitude  *float64 `form:"latitude"`
	Longitude *float64 `form:"longitude"`
	Timezone  *float64 `form:"timezone"`
}

// TimeEntry is one row of a schedule response.
type TimeEntry struct {
	Name  string  `json:"name"`
	Time  string  `json:"time"`
	Hours float64 `json:"hours"`
}

// ScheduleResponse is the body of /api/v1/schedule.
type ScheduleResponse struct {
	Date  string          `json:"date"`
	Site  prayer.Site     `json:"site"`
	Times []TimeEntry     `json:"times"`
	Raw   prayer.Schedule `json:"raw"`
}

// QiblaResponse is the body of /api/v1/qibla.
type QiblaResponse struct {
	Observer  geo.Coordinate `json:"observer"`
	Bearing   float64        `json:"bearing"`
	DMS       string         `json:"dms"`
	Direction string         `json:"direction"`
}

// AnchoredResponse is the body of /api/v1/calendar/anchored.
type AnchoredResponse struct {
	Date    string             `json:"date"`
	Weekday string             `json:"weekday"`
	Pasaran string             `json:"pasaran"`
	Hijri   calendar.HijriDate `json:"hijri"`
	Label   string             `json:"label"`
}

// MonthResponse is the body of /api/v1/calendar/month.
type MonthResponse struct {
	calendar.MonthGrid
	HijriSpan string `json:"hijri_span"`
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// resolve applies q over the default site and picks the civil date.
func (s *Server) resolve(q siteQuery) (time.Time, prayer.Site, error) {
	site := s.site
	if q.Latitude != nil || q.Longitude != nil {
		if q.Latitude == nil || q.Longitude == nil {
			return time.Time{}, site, fmt.Errorf("latitude and longitude must be given together")
		}
		site.Coordinate = &geo.Coordinate{Latitude: *q.Latitude, Longitude: *q.Longitude}
	}
	if q.Timezone != nil {
		site.Timezone = *q.Timezone
	}
	if q.Elevation != nil {
		site.Elevation = *q.Elevation
	}
	if q.Ihtiyat != nil {
		site.Ihtiyat = *q.Ihtiyat
	}
	if q.Horizon != "" {
		h, err := prayer.ParseHorizon(q.Horizon)
		if err != nil {
			return time.Time{}, site, err
		}
		site.Horizon = h
	}

	date, err := s.date(q.Date, site.Location())
	return date, site, err
}

// date parses YYYY-MM-DD, defaulting to today at loc.
func (s *Server) date(raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		now := s.now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", raw)
	}
	return d, nil
}

func (s *Server) schedule(c *gin.Context) {
	var q siteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	date, site, err := s.resolve(q)
	if err != nil {
		badRequest(c, err)
		return
	}

	sched, err := prayer.Compute(date, site)
	s.metrics.Computed("schedule", err)
	if err != nil {
		badRequest(c, err)
		return
	}

	resp := ScheduleResponse{Date: date.Format(dateLayout), Site: site, Raw: sched}
	for _, e := range sched.Entries() {
		resp.Times = append(resp.Times, TimeEntry{Name: e.Name, Time: prayer.FormatHM(e.Hours), Hours: e.Hours})
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) detail(c *gin.Context) {
	var q siteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	date, site, err := s.resolve(q)
	if err != nil {
		badRequest(c, err)
		return
	}

	report, err := prayer.Detail(date, site)
	s.metrics.Computed("detail", err)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) qibla(c *gin.Context) {
	var q siteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	_, site, err := s.resolve(q)
	if err == nil && site.Coordinate == nil {
		err = prayer.ErrNoCoordinate
	}
	if err == nil {
		err = site.Coordinate.Validate()
	}
	s.metrics.Computed("qibla", err)
	if err != nil {
		badRequest(c, err)
		return
	}

	bearing := qibla.Bearing(*site.Coordinate)
	c.JSON(http.StatusOK, QiblaResponse{
		Observer:  *site.Coordinate,
		Bearing:   bearing,
		DMS:       prayer.FormatDMS(bearing),
		Direction: qibla.Direction(bearing),
	})
}

func (s *Server) hijriToGregorian(c *gin.Context) {
	var q hijriQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	conv, err := calendar.HijriToGregorian(calendar.HijriDate{Day: q.Day, Month: q.Month, Year: q.Year})
	s.metrics.Computed("hijri_to_gregorian", err)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (s *Server) hijriFromGregorian(c *gin.Context) {
	d, err := s.date(c.Query("date"), s.site.Location())
	if err != nil {
		badRequest(c, err)
		return
	}

	conv, err := calendar.GregorianToHijri(d.Year(), int(d.Month()), d.Day())
	s.metrics.Computed("hijri_from_gregorian", err)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (s *Server) anchored(c *gin.Context) {
	d, err := s.date(c.Query("date"), s.site.Location())
	if err != nil {
		badRequest(c, err)
		return
	}

	h := calendar.Anchored(d)
	s.metrics.Computed("anchored", nil)
	c.JSON(http.StatusOK, AnchoredResponse{
		Date:    d.Format(dateLayout),
		Weekday: calendar.WeekdayOf(d),
		Pasaran: calendar.PasaranOf(d),
		Hijri:   h,
		Label:   h.String(),
	})
}

func (s *Server) month(c *gin.Context) {
	var q monthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	if q.Year == 0 || q.Month == 0 {
		now := s.now().In(s.site.Location())
		if q.Year == 0 {
			q.Year = now.Year()
		}
		if q.Month == 0 {
			q.Month = int(now.Month())
		}
	}

	g, err := calendar.Month(q.Year, q.Month)
	s.metrics.Computed("month", err)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, MonthResponse{MonthGrid: g, HijriSpan: g.HijriSpan()})
}

func (s *Server) ijtima(c *gin.Context) {
	var q ijtimaQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	req := ijtima.Request{
		EpochYear:  q.Epoch,
		YearOffset: q.Offset,
		Month:      q.Month,
		Tier:       q.Tier,
		Timezone:   s.site.Timezone,
	}
	if req.Tier == 0 {
		req.Tier = s.tier
	}
	if s.site.Coordinate != nil {
		req.Observer = *s.site.Coordinate
	}
	if q.Latitude != nil {
		req.Observer.Latitude = *q.Latitude
	}
	if q.Longitude != nil {
		req.Observer.Longitude = *q.Longitude
	}
	if q.Timezone != nil {
		req.Timezone = *q.Timezone
	}

	res, err := ijtima.Compute(req)
	s.metrics.Computed("ijtima", err)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (s *Server) tahlil(c *gin.Context) {
	var q hijriQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	dates, err := calendar.Tahlil(calendar.HijriDate{Day: q.Day, Month: q.Month, Year: q.Year})
	s.metrics.Computed("tahlil", err)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"death": calendar.HijriDate{Day: q.Day, Month: q.Month, Year: q.Year}, "dates": dates})
}
