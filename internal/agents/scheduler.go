package agents

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"time"
)

// SchedulerAgent turns posting windows like "Friday 7 PM" into concrete times
type SchedulerAgent struct {
	location *time.Location
}

func NewSchedulerAgent(timezone string) *SchedulerAgent {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		log.Printf("⚠️ Unknown timezone %q, falling back to UTC", timezone)
		location = time.UTC
	}

	return &SchedulerAgent{location: location}
}

func (s *SchedulerAgent) Location() *time.Location {
	return s.location
}

// NextSlots returns the next occurrence of each window strictly after from,
// earliest first. Windows that cannot be parsed are skipped.
func (s *SchedulerAgent) NextSlots(windows []string, from time.Time) []time.Time {
	from = from.In(s.location)

	var slots []time.Time
	for _, window := range windows {
		slot, err := s.nextOccurrence(window, from)
		if err != nil {
			log.Printf("⚠️ Skipping posting window %q: %v", window, err)
			continue
		}
		slots = append(slots, slot)
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	return slots
}

func (s *SchedulerAgent) nextOccurrence(window string, from time.Time) (time.Time, error) {
	weekday, clock, err := parseWindow(window)
	if err != nil {
		return time.Time{}, err
	}

	days := (int(weekday) - int(from.Weekday()) + 7) % 7
	date := from.AddDate(0, 0, days)
	slot := s.calculateScheduledTime(date, clock)

	if !slot.After(from) {
		slot = s.calculateScheduledTime(date.AddDate(0, 0, 7), clock)
	}
	return slot, nil
}

func (s *SchedulerAgent) calculateScheduledTime(date time.Time, clock time.Time) time.Time {
	return time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		clock.Hour(),
		clock.Minute(),
		0, 0,
		s.location,
	)
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// parseWindow accepts "<Weekday> <h>[:mm] <AM|PM>"
func parseWindow(window string) (time.Weekday, time.Time, error) {
	parts := strings.Fields(window)
	if len(parts) != 3 {
		return 0, time.Time{}, fmt.Errorf("invalid window format")
	}

	weekday, ok := weekdays[strings.ToLower(parts[0])]
	if !ok {
		return 0, time.Time{}, fmt.Errorf("invalid weekday %q", parts[0])
	}

	clockStr := parts[1] + " " + strings.ToUpper(parts[2])
	layout := "3 PM"
	if strings.Contains(parts[1], ":") {
		layout = "3:04 PM"
	}

	clock, err := time.Parse(layout, clockStr)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	return weekday, clock, nil
}
