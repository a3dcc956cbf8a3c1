package booking

import (
	"fmt"
	"regexp"
	"strconv"
)

var slotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):00-([01]\d|2[0-3]):00$`)

// TimeSlot is a one-hour range on a booking date.
type TimeSlot struct {
	start int
}

func ParseTimeSlot(s string) (TimeSlot, error) {
	m := slotPattern.FindStringSubmatch(s)
	if m == nil {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	if end != start+1 {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start}, nil
}

func NewTimeSlot(startHour int) (TimeSlot, error) {
	if startHour < 0 || startHour > 22 {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: startHour}, nil
}

func (t TimeSlot) StartHour() int { return t.start }
func (t TimeSlot) EndHour() int   { return t.start + 1 }

func (t TimeSlot) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", t.start, t.start+1)
}

// DaySlots lists the hourly slots between opening and closing hour.
func DaySlots(openingHour, closingHour int) []TimeSlot {
	if openingHour < 0 {
		openingHour = 0
	}
	if closingHour > 23 {
		closingHour = 23
	}
	var slots []TimeSlot
	for h := openingHour; h < closingHour; h++ {
		slots = append(slots, TimeSlot{start: h})
	}
	return slots
}
