package dtplus

/*
calendar.go contains proleptic Gregorian calendar helpers.
*/

const (
	minYear = -1000
	maxYear = 10000
)

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// cumulative days before the first of each month in a common year
var monthOffsets = [13]int{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

/*
IsLeap returns true if year is a Gregorian leap year.
*/
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
DaysIn returns the number of days in month of year. Zero is returned
for a month outside 1 through 12.
*/
func DaysIn(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return monthDays[month]
}

func dayOfYear(year, month, day int) int {
	if month < 1 || month > 12 {
		return 0
	}
	d := monthOffsets[month] + day
	if month > 2 && IsLeap(year) {
		d++
	}
	return d
}

// daysFromCivil returns the number of days since 1970-01-01.
func daysFromCivil(y, m, d int) int {
	if m <= 2 {
		y--
	}
	era, _ := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int) (y, m, d int) {
	z += 719468
	era, _ := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = doy - (153*mp+2)/5 + 1
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return
}

// weekdayOf returns 0 (Sunday) through 6 (Saturday).
func weekdayOf(y, m, d int) int {
	_, wd := floorDiv(daysFromCivil(y, m, d)+4, 7)
	return wd
}
