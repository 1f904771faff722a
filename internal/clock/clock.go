// Package clock resolves stored IANA timezone names into user-local times.
// Invalid or unknown names never surface as errors; they fall back to the
// configured default zone so a bad user setting cannot break a scheduler tick.
package clock

import (
	"sync"
	"time"

	"github.com/ekinoks/slack-assistant-bot/internal/domain"
)

type Clock struct {
	defaultZone string

	mu    sync.RWMutex
	cache map[string]*time.Location
}

func New(defaultZone string) *Clock {
	if defaultZone == "" {
		defaultZone = domain.DefaultTimezone
	}
	return &Clock{
		defaultZone: defaultZone,
		cache:       make(map[string]*time.Location),
	}
}

// Location resolves an IANA zone name, falling back to the default zone and
// finally to Europe/Istanbul, then UTC. It is called once per user per tick,
// so resolved locations are cached.
func (c *Clock) Location(name string) *time.Location {
	if name == "" {
		name = c.defaultZone
	}

	c.mu.RLock()
	loc, ok := c.cache[name]
	c.mu.RUnlock()
	if ok {
		return loc
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		loc, err = time.LoadLocation(c.defaultZone)
		if err != nil {
			loc, err = time.LoadLocation(domain.DefaultTimezone)
			if err != nil {
				loc = time.UTC
			}
		}
	}

	c.mu.Lock()
	c.cache[name] = loc
	c.mu.Unlock()

	return loc
}

// UserNow renders a server instant in the user's zone.
func (c *Clock) UserNow(timezone string, now time.Time) time.Time {
	return now.In(c.Location(timezone))
}

// ISOWeekday converts Go's Sunday=0 convention to ISO 8601 (Monday=1..Sunday=7).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return domain.Sunday
	}
	return wd
}

// DateString formats a time as the YYYY-MM-DD calendar date used by
// period_date, remind_date and due_date columns.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// TimeString formats a time as the HH:MM wall-clock string used by
// remind_at and schedule start_time columns.
func TimeString(t time.Time) string {
	return t.Format("15:04")
}
