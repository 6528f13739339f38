package timetable

import "github.com/azamatbyte/ramadan/internal/domain"

// Day is one entry of the Ramadan 2026 table: base sahar and iftar times for
// Tashkent, the reference location.
type Day struct {
	Index int
	Date  string
	Sahar domain.Clock
	Iftar domain.Clock
}

// calendar covers Ramadan 2026, Feb 19 through Mar 20, for Tashkent.
var calendar = []Day{
	{Index: 1, Date: "2026-02-19", Sahar: domain.MustClock("05:54"), Iftar: domain.MustClock("18:05")},
	{Index: 2, Date: "2026-02-20", Sahar: domain.MustClock("05:53"), Iftar: domain.MustClock("18:07")},
	{Index: 3, Date: "2026-02-21", Sahar: domain.MustClock("05:51"), Iftar: domain.MustClock("18:08")},
	{Index: 4, Date: "2026-02-22", Sahar: domain.MustClock("05:50"), Iftar: domain.MustClock("18:09")},
	{Index: 5, Date: "2026-02-23", Sahar: domain.MustClock("05:49"), Iftar: domain.MustClock("18:10")},
	{Index: 6, Date: "2026-02-24", Sahar: domain.MustClock("05:47"), Iftar: domain.MustClock("18:11")},
	{Index: 7, Date: "2026-02-25", Sahar: domain.MustClock("05:46"), Iftar: domain.MustClock("18:13")},
	{Index: 8, Date: "2026-02-26", Sahar: domain.MustClock("05:44"), Iftar: domain.MustClock("18:14")},
	{Index: 9, Date: "2026-02-27", Sahar: domain.MustClock("05:43"), Iftar: domain.MustClock("18:15")},
	{Index: 10, Date: "2026-02-28", Sahar: domain.MustClock("05:41"), Iftar: domain.MustClock("18:16")},
	{Index: 11, Date: "2026-03-01", Sahar: domain.MustClock("05:40"), Iftar: domain.MustClock("18:17")},
	{Index: 12, Date: "2026-03-02", Sahar: domain.MustClock("05:38"), Iftar: domain.MustClock("18:19")},
	{Index: 13, Date: "2026-03-03", Sahar: domain.MustClock("05:37"), Iftar: domain.MustClock("18:20")},
	{Index: 14, Date: "2026-03-04", Sahar: domain.MustClock("05:35"), Iftar: domain.MustClock("18:21")},
	{Index: 15, Date: "2026-03-05", Sahar: domain.MustClock("05:34"), Iftar: domain.MustClock("18:22")},
	{Index: 16, Date: "2026-03-06", Sahar: domain.MustClock("05:32"), Iftar: domain.MustClock("18:23")},
	{Index: 17, Date: "2026-03-07", Sahar: domain.MustClock("05:31"), Iftar: domain.MustClock("18:24")},
	{Index: 18, Date: "2026-03-08", Sahar: domain.MustClock("05:29"), Iftar: domain.MustClock("18:25")},
	{Index: 19, Date: "2026-03-09", Sahar: domain.MustClock("05:27"), Iftar: domain.MustClock("18:27")},
	{Index: 20, Date: "2026-03-10", Sahar: domain.MustClock("05:26"), Iftar: domain.MustClock("18:28")},
	{Index: 21, Date: "2026-03-11", Sahar: domain.MustClock("05:24"), Iftar: domain.MustClock("18:29")},
	{Index: 22, Date: "2026-03-12", Sahar: domain.MustClock("05:22"), Iftar: domain.MustClock("18:30")},
	{Index: 23, Date: "2026-03-13", Sahar: domain.MustClock("05:21"), Iftar: domain.MustClock("18:31")},
	{Index: 24, Date: "2026-03-14", Sahar: domain.MustClock("05:19"), Iftar: domain.MustClock("18:32")},
	{Index: 25, Date: "2026-03-15", Sahar: domain.MustClock("05:17"), Iftar: domain.MustClock("18:33")},
	{Index: 26, Date: "2026-03-16", Sahar: domain.MustClock("05:15"), Iftar: domain.MustClock("18:34")},
	{Index: 27, Date: "2026-03-17", Sahar: domain.MustClock("05:14"), Iftar: domain.MustClock("18:35")},
	{Index: 28, Date: "2026-03-18", Sahar: domain.MustClock("05:12"), Iftar: domain.MustClock("18:37")},
	{Index: 29, Date: "2026-03-19", Sahar: domain.MustClock("05:10"), Iftar: domain.MustClock("18:38")},
	{Index: 30, Date: "2026-03-20", Sahar: domain.MustClock("05:08"), Iftar: domain.MustClock("18:39")},
}

// DayFor returns the table entry whose date matches the given calendar date.
// A false result means the date is outside Ramadan, which is a normal state,
// not an error.
func DayFor(date string) (Day, bool) {
	for _, d := range calendar {
		if d.Date == date {
			return d, true
		}
	}
	return Day{}, false
}

// DayByIndex returns the table entry for a 1-based day index.
func DayByIndex(index int) (Day, bool) {
	if index < 1 || index > len(calendar) {
		return Day{}, false
	}
	return calendar[index-1], true
}

// Days returns the number of days the table covers.
func Days() int { return len(calendar) }
