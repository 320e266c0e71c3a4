package domain

import (
	"strconv"
	"time"
)

// Day is a calendar date. It marshals to/from YYYY-MM-DD in JSON, which is
// the granularity the daily series is reported at.
type Day struct {
	time.Time
}

// NewDay truncates t to its calendar date.
func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{time.Date(y, m, d, 0, 0, 0, 0, t.Location())}
}

func (d Day) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format("2006-01-02"))), nil
}

func (d *Day) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// DailyMetric is one day of ad performance numbers. Values are synthetic
// and independent of each other, so clicks can exceed impressions and
// leads can exceed conversions.
type DailyMetric struct {
	Date        Day `json:"date"`
	Impressions int `json:"impressions"`
	Clicks      int `json:"clicks"`
	Conversions int `json:"conversions"`
	Leads       int `json:"leads"`
	Spend       int `json:"spend"`
}
