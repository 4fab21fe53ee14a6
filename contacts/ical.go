package contacts

import (
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// BirthdayCalendar builds an iCalendar with one yearly recurring event per
// contact birthday in the feed. Entries without a birthday are skipped.
// Year-less birthdays (--01-02) are anchored to 1972, a leap year, so that
// February 29 survives the round trip.
func BirthdayCalendar(feed *ContactsFeed) (*ical.Calendar, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//jamuseum//go-gdata//EN")

	now := time.Now().UTC()
	for i := range feed.Entries {
		e := &feed.Entries[i]
		if e.Birthday == nil || e.Birthday.When == "" {
			continue
		}
		when, err := parseBirthday(e.Birthday.When)
		if err != nil {
			return nil, err
		}

		uid := e.ID
		if uid == "" {
			uid = uuid.NewString()
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, uid)
		event.Props.SetText(ical.PropSummary, fmt.Sprintf("Birthday: %v", displayName(e)))

		stamp := ical.NewProp(ical.PropDateTimeStamp)
		stamp.Value = now.Format("20060102T150405Z")
		event.Props.Set(stamp)

		start := ical.NewProp(ical.PropDateTimeStart)
		start.SetValueType(ical.ValueDate)
		start.Value = when.Format("20060102")
		event.Props.Set(start)

		rrule := ical.NewProp(ical.PropRecurrenceRule)
		rrule.Value = "FREQ=YEARLY"
		event.Props.Set(rrule)

		cal.Children = append(cal.Children, event.Component)
	}

	return cal, nil
}

func parseBirthday(when string) (time.Time, error) {
	full := when
	if len(when) >= 2 && when[:2] == "--" {
		full = "1972" + when[1:]
	}
	t, err := time.Parse("2006-01-02", full)
	if err != nil {
		return time.Time{}, fmt.Errorf("contacts: invalid birthday %q", when)
	}
	return t, nil
}
