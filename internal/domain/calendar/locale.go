package calendar

import (
	"time"

	"golang.org/x/text/language"
)

// Locale controls the first day of a displayed week and the short date
// layout used for its labels.
type Locale struct {
	Tag        language.Tag
	FirstDay   time.Weekday
	DateLayout string
}

var supportedLocales = []Locale{
	{Tag: language.English, FirstDay: time.Sunday, DateLayout: "1/2/2006"},
	{Tag: language.BritishEnglish, FirstDay: time.Monday, DateLayout: "2/1/2006"},
	{Tag: language.Finnish, FirstDay: time.Monday, DateLayout: "2.1.2006"},
	{Tag: language.Swedish, FirstDay: time.Monday, DateLayout: "2006-01-02"},
	{Tag: language.German, FirstDay: time.Monday, DateLayout: "2.1.2006"},
	{Tag: language.French, FirstDay: time.Monday, DateLayout: "2/1/2006"},
}

var localeMatcher = language.NewMatcher(localeTags())

func localeTags() []language.Tag {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.Tag
	}
	return tags
}

// ParseLocale maps a locale string such as "fi" or "en-gb" to the closest
// supported locale. Anything unrecognised resolves to English.
func ParseLocale(s string) Locale {
	tag, err := language.Parse(s)
	if err != nil {
		return supportedLocales[0]
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return supportedLocales[0]
	}
	return supportedLocales[idx]
}

func (l Locale) String() string {
	return l.Tag.String()
}

// DayIndex is the position of wd within a week that starts on l.FirstDay.
func (l Locale) DayIndex(wd time.Weekday) int {
	return (int(wd) - int(l.FirstDay) + DaysPerWeek) % DaysPerWeek
}

func (l Locale) Format(t time.Time) string {
	return t.Format(l.DateLayout)
}

// mondayOffset is how many days the locale's week start precedes the ISO Monday.
func (l Locale) mondayOffset() int {
	return (int(time.Monday) - int(l.FirstDay) + DaysPerWeek) % DaysPerWeek
}

// WeekOf reports the (ISO year, ISO week) of the displayed week containing t.
// For Sunday-first locales a Sunday belongs to the week of the following Monday.
func (l Locale) WeekOf(t time.Time) (year, week int) {
	start := dateOnly(t).AddDate(0, 0, -l.DayIndex(t.Weekday()))
	return start.AddDate(0, 0, l.mondayOffset()).ISOWeek()
}
