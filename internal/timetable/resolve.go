package timetable

import (
	"errors"
	"fmt"

	"github.com/azamatbyte/ramadan/internal/domain"
)

var (
	ErrUnknownRegion = errors.New("unknown region")
	ErrUnknownDay    = errors.New("unknown ramadan day")
)

// Times is a resolved pair of fasting-window boundaries for one region and day.
type Times struct {
	Sahar domain.Clock
	Iftar domain.Clock
}

// TimesFor applies the region's minute offsets to the base times of the given
// day. Minute totals may cross midnight in either direction; Clock.Add keeps
// the result a valid time of day.
func TimesFor(regionKey string, dayIndex int) (Times, error) {
	region, ok := RegionByKey(regionKey)
	if !ok {
		return Times{}, fmt.Errorf("%w: %q", ErrUnknownRegion, regionKey)
	}
	day, ok := DayByIndex(dayIndex)
	if !ok {
		return Times{}, fmt.Errorf("%w: %d", ErrUnknownDay, dayIndex)
	}
	return Times{
		Sahar: day.Sahar.Add(region.SaharOffset),
		Iftar: day.Iftar.Add(region.IftarOffset),
	}, nil
}

// Name returns the region's display name in the given language.
func (r Region) Name(lang domain.Language) string {
	if lang == domain.LangRU {
		return r.NameRU
	}
	return r.NameUZ
}
