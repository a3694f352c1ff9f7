package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthNames = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|sept|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

var (
	dayMonthPattern  = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)\b`)
	monthDayPattern  = regexp.MustCompile(`(?i)\b(` + monthNames + `)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	isoDatePattern   = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	slashDatePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)

	weekdayPattern = regexp.MustCompile(`(?i)\b(?:(?:next|this)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	clockTimePattern = regexp.MustCompile(`(?i)\b(\d{1,2}):(\d{2})\s*(am|pm)?\b`)
	hourTimePattern  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)\b`)
	atHourPattern    = regexp.MustCompile(`(?i)\bat\s+(\d{1,2})\b`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var weekdays = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
}

// FollowUpDate extracts a follow-up date from the text and resolves it
// against now. Day+month forms without a year take the current year, rolling
// to next year once the date has passed. Weekday phrases ("next Monday",
// "this Thursday") resolve to the next occurrence, never today. The result
// is "YYYY-MM-DD", suffixed with " HH:MM" when the text carries a
// time-of-day.
func FollowUpDate(text string, now time.Time) string {
	date := explicitDate(text, now)
	if date == "" {
		date = weekdayDate(text, now)
	}
	if date == "" {
		return ""
	}
	if t := timeOfDay(text); t != "" {
		return date + " " + t
	}
	return date
}

func explicitDate(text string, now time.Time) string {
	if m := dayMonthPattern.FindStringSubmatch(text); m != nil {
		if d := resolveDayMonth(m[1], m[2], now); d != "" {
			return d
		}
	}
	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		if d := resolveDayMonth(m[2], m[1], now); d != "" {
			return d
		}
	}
	if m := isoDatePattern.FindStringSubmatch(text); m != nil {
		if validDate(atoi(m[1]), time.Month(atoi(m[2])), atoi(m[3])) {
			return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3])
		}
	}
	if m := slashDatePattern.FindStringSubmatch(text); m != nil {
		month, day, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if validDate(year, time.Month(month), day) {
			return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		}
	}
	return ""
}

// resolveDayMonth turns a day number and month name into a concrete date,
// choosing the first year in which the date has not already passed.
func resolveDayMonth(dayStr, monthName string, now time.Time) string {
	month, ok := months[strings.ToLower(monthName)[:3]]
	if !ok {
		return ""
	}
	day := atoi(dayStr)
	if !validDate(now.Year(), month, day) {
		return ""
	}
	date := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		date = time.Date(now.Year()+1, month, day, 0, 0, 0, 0, now.Location())
	}
	return date.Format("2006-01-02")
}

func weekdayDate(text string, now time.Time) string {
	m := weekdayPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	target := weekdays[strings.ToLower(m[1])]
	daysAhead := (int(target) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	return now.AddDate(0, 0, daysAhead).Format("2006-01-02")
}

// timeOfDay finds an "HH:MM", "3pm", or "at 10" style time in the text.
func timeOfDay(text string) string {
	if m := clockTimePattern.FindStringSubmatch(text); m != nil {
		hour, minute := atoi(m[1]), atoi(m[2])
		hour = applyMeridiem(hour, m[3])
		if hour <= 23 && minute <= 59 {
			return fmt.Sprintf("%02d:%02d", hour, minute)
		}
	}
	if m := hourTimePattern.FindStringSubmatch(text); m != nil {
		hour := applyMeridiem(atoi(m[1]), m[2])
		if hour <= 23 {
			return fmt.Sprintf("%02d:00", hour)
		}
	}
	if m := atHourPattern.FindStringSubmatch(text); m != nil {
		if hour := atoi(m[1]); hour <= 23 {
			return fmt.Sprintf("%02d:00", hour)
		}
	}
	return ""
}

func applyMeridiem(hour int, meridiem string) int {
	switch strings.ToLower(meridiem) {
	case "am":
		if hour == 12 {
			return 0
		}
	case "pm":
		if hour != 12 {
			return hour + 12
		}
	}
	return hour
}

func validDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 || day > 31 {
		return false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return d.Month() == month && d.Day() == day
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
