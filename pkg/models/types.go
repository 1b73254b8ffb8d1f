package models

// Weekday is one entry of the fixed workout-day alphabet
type Weekday struct {
	Code string
	Name string
}

// Weekdays lists the workout days in display order, Sunday first
var Weekdays = []Weekday{
	{Code: "Su", Name: "Sunday"},
	{Code: "M", Name: "Monday"},
	{Code: "T", Name: "Tuesday"},
	{Code: "W", Name: "Wednesday"},
	{Code: "Th", Name: "Thursday"},
	{Code: "F", Name: "Friday"},
	{Code: "Sa", Name: "Saturday"},
}

// IsWeekday reports whether code belongs to the weekday alphabet
func IsWeekday(code string) bool {
	for _, d := range Weekdays {
		if d.Code == code {
			return true
		}
	}
	return false
}

// WeekdayName returns the display name for a weekday code, or the code itself
func WeekdayName(code string) string {
	for _, d := range Weekdays {
		if d.Code == code {
			return d.Name
		}
	}
	return code
}
