package dtplus

/*
arith.go implements signed field arithmetic with carry and borrow into
coarser fields. Every public Add method produces the same result as
applying the corresponding single step |n| times; larger magnitudes are
reduced to a quotient carried into the next coarser field plus a
remainder, rather than iterated.
*/

/*
AddYear adds n years. A February 29 which lands on a common year is
left as is; call [DateTime.SetDay] or [DateTime.AddDay] to correct it
if needed.
*/
func (r *DateTime) AddYear(n int) {
	r.year += n
	r.mutated()
}

/*
AddMonth adds n months, carrying into the year. After every single
month step the day is clamped to the length of the month reached, so
January 31 plus one month is the last day of February, and plus two
months is March 29 (leap year) or March 28.
*/
func (r *DateTime) AddMonth(n int) {
	r.addMonths(n)
	r.mutated()
}

/*
AddDay adds n days, carrying into the month and year.
*/
func (r *DateTime) AddDay(n int) {
	r.addDays(n)
	r.mutated()
}

/*
AddHour adds n hours, carrying into the day.
*/
func (r *DateTime) AddHour(n int) {
	r.addHours(n)
	r.mutated()
}

/*
AddMinute adds n minutes, carrying into the hour.
*/
func (r *DateTime) AddMinute(n int) {
	r.addMinutes(n)
	r.mutated()
}

/*
AddSecond adds n seconds, carrying into the minute.
*/
func (r *DateTime) AddSecond(n int) {
	r.addSeconds(n)
	r.mutated()
}

/*
AddHSecond adds n hundredths of a second, carrying into the second.
*/
func (r *DateTime) AddHSecond(n int) {
	if q := carry(&r.hsec, n, 100); q != 0 {
		r.addSeconds(q)
	}
	r.mutated()
}

func (r *DateTime) mutated() {
	r.zero = false
	r.touch()
}

// carry adds n to *field, wrapping at base, and returns the number of
// units to carry into the next coarser field.
func carry(field *int, n, base int) (q int) {
	switch n {
	case 0:
	case 1:
		if *field++; *field >= base {
			*field -= base
			q = 1
		}
	case -1:
		if *field--; *field < 0 {
			*field += base
			q = -1
		}
	default:
		q, *field = floorDiv(*field+n, base)
	}
	return
}

func (r *DateTime) addSeconds(n int) {
	if q := carry(&r.second, n, 60); q != 0 {
		r.addMinutes(q)
	}
}

func (r *DateTime) addMinutes(n int) {
	if q := carry(&r.minute, n, 60); q != 0 {
		r.addHours(q)
	}
}

func (r *DateTime) addHours(n int) {
	if q := carry(&r.hour, n, 24); q != 0 {
		r.addDays(q)
	}
}

func (r *DateTime) addDays(n int) {
	switch n {
	case 0:
	case 1:
		r.nextDay()
	case -1:
		r.prevDay()
	default:
		r.year, r.month, r.day = civilFromDays(daysFromCivil(r.year, r.month, r.day) + n)
	}
}

func (r *DateTime) nextDay() {
	if r.day++; r.day > DaysIn(r.month, r.year) {
		r.day = 1
		if r.month++; r.month > 12 {
			r.month = 1
			r.year++
		}
	}
}

func (r *DateTime) prevDay() {
	if r.day--; r.day < 1 {
		if r.month--; r.month < 1 {
			r.month = 12
			r.year--
		}
		r.day = DaysIn(r.month, r.year)
	}
}

// leapCycleMonths bounds the month walk in addMonths: any run of this
// many consecutive months contains a 28-day February, the shortest
// possible month, so visiting more of them cannot lower the clamp.
const leapCycleMonths = 48

func (r *DateTime) addMonths(n int) {
	if n == 0 {
		return
	}

	step := sign(n)
	base := r.year*12 + r.month - 1
	day := r.day

	walk := absInt(n)
	if walk > leapCycleMonths {
		walk = leapCycleMonths
	}
	for k := 1; k <= walk; k++ {
		y, m := floorDiv(base+step*k, 12)
		if dim := DaysIn(m+1, y); dim < day {
			day = dim
		}
	}

	y, m := floorDiv(base+n, 12)
	r.year, r.month, r.day = y, m+1, day
}
