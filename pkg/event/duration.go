package event

import "fmt"

// Duration is the fixed set of lengths an event can have. The values are
// the display strings the original form offered, stored verbatim.
type Duration string

const (
	HalfHour      Duration = "30 minutes"
	OneHour       Duration = "1 hour"
	NinetyMinutes Duration = "1.5 hours"
	TwoHours      Duration = "2 hours"
	ThreeHours    Duration = "3 hours"
	AllDay        Duration = "All day"
)

// Durations lists the enum in form order.
func Durations() []Duration {
	return []Duration{HalfHour, OneHour, NinetyMinutes, TwoHours, ThreeHours, AllDay}
}

var durationAliases = map[string]Duration{
	"30m":        HalfHour,
	"30min":      HalfHour,
	"30 minutes": HalfHour,
	"1h":         OneHour,
	"1hr":        OneHour,
	"1 hour":     OneHour,
	"1.5h":       NinetyMinutes,
	"90m":        NinetyMinutes,
	"1.5 hours":  NinetyMinutes,
	"2h":         TwoHours,
	"2 hours":    TwoHours,
	"3h":         ThreeHours,
	"3 hours":    ThreeHours,
	"all":        AllDay,
	"allday":     AllDay,
	"all day":    AllDay,
}

// DurationForAlias resolves a CLI token like "1h" or "all" to its enum
// member. The canonical display strings are accepted as-is.
func DurationForAlias(alias string) (Duration, error) {
	if d, ok := durationAliases[alias]; ok {
		return d, nil
	}
	return "", fmt.Errorf("unknown duration %q", alias)
}

// Valid reports enum membership.
func (d Duration) Valid() bool {
	for _, v := range Durations() {
		if d == v {
			return true
		}
	}
	return false
}

// Minutes returns the duration's length. All-day events report a full day.
func (d Duration) Minutes() int {
	switch d {
	case HalfHour:
		return 30
	case OneHour:
		return 60
	case NinetyMinutes:
		return 90
	case TwoHours:
		return 120
	case ThreeHours:
		return 180
	case AllDay:
		return 24 * 60
	}
	return 0
}

func (d Duration) String() string {
	return string(d)
}
