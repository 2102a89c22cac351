package entities

import "time"

// Equipment is owned by the equipment registry. The completion pipeline only
// reads the interval configuration and writes the service dates.
//
// NextServiceDate is advisory: concurrent completions touching the same
// equipment resolve as last writer wins.
type Equipment struct {
	ID                    string     `json:"id"`
	OrgID                 string     `json:"org_id"`
	CustomerID            string     `json:"customer_id"`
	Name                  string     `json:"name"`
	ServiceIntervalMonths *int       `json:"service_interval_months,omitempty"`
	LastServiceDate       *time.Time `json:"last_service_date,omitempty"`
	NextServiceDate       *time.Time `json:"next_service_date,omitempty"`
}

// ServiceDay truncates t to midnight UTC of its calendar day.
func ServiceDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddCalendarMonths adds months to day using calendar arithmetic. When the
// target month is shorter than day's day-of-month the result is clamped to
// the last day of that month (Aug 31 + 6 = Feb 28/29).
func AddCalendarMonths(day time.Time, months int) time.Time {
	day = ServiceDay(day)
	firstOfTarget := time.Date(day.Year(), day.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	d := day.Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}
