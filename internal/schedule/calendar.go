package schedule

import (
	"fmt"
	"time"
)

// DayKeyLayout is the canonical day-key format used everywhere:
// column keys, sparse quantity maps, assistant instructions.
const DayKeyLayout = "2006-01-02"

// HorizonDays is the default scheduling horizon, counted from the
// reference date inclusive.
const HorizonDays = 90

type Granularity string

const (
	GranularityDay  Granularity = "day"
	GranularityWeek Granularity = "week"
)

func ParseGranularity(s string) (Granularity, error) {
	switch s {
	case "", string(GranularityDay):
		return GranularityDay, nil
	case string(GranularityWeek):
		return GranularityWeek, nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// Column is one calendar column of the grid. Exactly one of the two
// variants is populated: a day column carries Date, a week column
// carries IncludedDays.
type Column struct {
	Key          string      `json:"key"`
	TopHeader    string      `json:"topHeader"`
	BottomHeader string      `json:"bottomHeader"`
	Type         Granularity `json:"type"`

	Date         time.Time `json:"dateObj,omitzero"`
	IncludedDays []string  `json:"includedDays,omitempty"`
}

func (c Column) IsWeek() bool { return c.Type == GranularityWeek }

var weekdayNames = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// WeekdayName returns the Chinese weekday label used in day-column
// bottom headers and in the unpivoted edit list.
func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.Weekday())]
}

// GenerateColumns produces the ordered column set for the horizon that
// starts at start (inclusive). Day mode emits one column per calendar
// day. Week mode groups the same days by ISO week in first-seen order;
// weeks clipped by the horizon edges carry fewer than 7 included days.
//
// The result is a pure function of (start, g, horizonDays): no state,
// no error path. Callers must hand in an already-validated date.
func GenerateColumns(start time.Time, g Granularity, horizonDays int) []Column {
	start = truncateToDay(start)

	if g == GranularityDay {
		cols := make([]Column, 0, horizonDays)
		for i := 0; i < horizonDays; i++ {
			d := start.AddDate(0, 0, i)
			key := d.Format(DayKeyLayout)
			cols = append(cols, Column{
				Key:          key,
				TopHeader:    key,
				BottomHeader: WeekdayName(d),
				Type:         GranularityDay,
				Date:         d,
			})
		}
		return cols
	}

	var cols []Column
	index := make(map[string]int)
	for i := 0; i < horizonDays; i++ {
		d := start.AddDate(0, 0, i)
		// ISOWeek assigns late-December days to week 1 of the next
		// year and early-January days to the last week of the
		// previous one; the key must follow the ISO year so every
		// day lands in exactly one group.
		isoYear, week := d.ISOWeek()
		key := fmt.Sprintf("%d-W%d", isoYear, week)

		at, ok := index[key]
		if !ok {
			at = len(cols)
			index[key] = at
			cols = append(cols, Column{
				Key:          key,
				TopHeader:    fmt.Sprintf("%d 第%d周", isoYear, week),
				BottomHeader: "总计",
				Type:         GranularityWeek,
			})
		}
		cols[at].IncludedDays = append(cols[at].IncludedDays, d.Format(DayKeyLayout))
	}
	return cols
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
