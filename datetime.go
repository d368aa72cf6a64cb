package dtplus

/*
datetime.go implements the DateTime value type: seven linked calendar
fields, a precision, behavior settings and a handful of derived fields.
*/

import "time"

// now is swapped in tests.
var now = time.Now

// field defaults; a field holding its default does not clear isZero.
const (
	defYear   = 0
	defMonth  = 1
	defDay    = 1
	defHour   = 0
	defMinute = 0
	defSecond = 0
	defHSec   = 0
)

/*
DateTime is a mutable, precision-aware calendar date and time.

Instances are not safe for concurrent mutation. Use [DateTime.Copy] to
obtain an independent instance for use in another goroutine.

The zero value is not ready for use; construct instances with [New],
[FromTime] or one of the parse functions.
*/
type DateTime struct {
	year, month, day           int
	hour, minute, second, hsec int
	zone                       string
	cfg                        Config
	zero                       bool

	// derived
	stale                   bool
	leap                    bool
	yday, absMonth, weekday int
	weekdayFresh            bool
}

/*
New returns a new *[DateTime] configured by merging each of the
(optional) input [Config] values, cumulatively, on top of
[DefaultConfig].

If the resulting configuration selects [InitCurrent], the fields are
populated from the current wall clock (without sub-second precision)
and the instance is not zero. Otherwise all fields hold their defaults
and [DateTime.IsZero] returns true.
*/
func New(cfg ...Config) *DateTime {
	c := DefaultConfig()
	for _, n := range cfg {
		c = c.Merge(n, true)
	}

	r := &DateTime{
		year:  defYear,
		month: defMonth,
		day:   defDay,
		cfg:   c,
		zero:  true,
	}

	if c.Init == InitCurrent {
		r.setFromTime(now())
	}

	r.truncate()
	r.Recompute()

	return r
}

/*
NewFlag returns a new *[DateTime] configured by the legacy packed flag.
*/
func NewFlag(flag Flag) *DateTime { return New(Decompose(flag)) }

/*
FromTime returns a new *[DateTime] populated from t. Sub-second
precision is not carried across. The zone label is taken from the
abbreviation of t's location when it has one, else from its offset
in "+HH:MM" form.

Unless overridden by cfg, the precision is [PrecisionSecond].
*/
func FromTime(t time.Time, cfg ...Config) *DateTime {
	c := DefaultConfig()
	c.Precision = PrecisionSecond
	for _, n := range cfg {
		c = c.Merge(n, true)
	}
	c.Init = InitZero

	r := &DateTime{cfg: c, zero: true}
	r.setFromTime(t)
	r.truncate()
	r.Recompute()

	return r
}

func (r *DateTime) setFromTime(t time.Time) {
	r.year = t.Year()
	r.month = int(t.Month())
	r.day = t.Day()
	r.hour = t.Hour()
	r.minute = t.Minute()
	r.second = t.Second()
	r.hsec = 0

	name, off := t.Zone()
	if name != "" && isLetter(name[0]) {
		r.zone = name
	} else {
		r.zone = offsetLabel(off)
	}
	r.zero = false
}

/*
Copy returns an independent copy of the receiver instance.
*/
func (r *DateTime) Copy() *DateTime {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}

/*
Config returns the configuration currently in effect.
*/
func (r *DateTime) Config() Config { return r.cfg }

/*
Precision returns the precision currently in effect.
*/
func (r *DateTime) Precision() Precision { return r.cfg.Precision }

/*
Strict returns true if the receiver validates setter input and keeps
derived fields fresh.
*/
func (r *DateTime) Strict() bool { return r.cfg.Strict() }

/*
TimeOnly returns true if date fields are to be ignored.
*/
func (r *DateTime) TimeOnly() bool { return r.cfg.TimeOnly }

/*
UseTimeZone returns true if the zone label is rendered by non-ISO
formats.
*/
func (r *DateTime) UseTimeZone() bool { return r.cfg.UseTimeZone }

/*
IsZero returns true while no field has been set to a value other than
its default. Note that setting a field to its default (e.g. day 1) does
not clear this state.
*/
func (r *DateTime) IsZero() bool { return r.zero }

func (r *DateTime) Year() int        { return r.year }
func (r *DateTime) Month() int       { return r.month }
func (r *DateTime) Day() int         { return r.day }
func (r *DateTime) Hour() int        { return r.hour }
func (r *DateTime) Minute() int      { return r.minute }
func (r *DateTime) Second() int      { return r.second }
func (r *DateTime) HSecond() int     { return r.hsec }
func (r *DateTime) TimeZone() string { return r.zone }

/*
SetPrecision sets the precision of the receiver and resets all fields
finer than p to their defaults. Invalid precisions are ignored.
*/
func (r *DateTime) SetPrecision(p Precision) {
	if p.Valid() {
		r.cfg.Precision = p
		r.truncate()
		r.touch()
	}
}

/*
Configure merges c into the configuration of the receiver (see
[Config.Merge] for the meaning of cumulative) and then resets all fields
finer than the resulting precision. The Init mode of c is recorded but
has no effect on an existing instance.
*/
func (r *DateTime) Configure(c Config, cumulative bool) {
	r.cfg = r.cfg.Merge(c, cumulative)
	r.truncate()
	r.touch()
}

/*
SetFlag is the legacy equivalent of [DateTime.Configure].
*/
func (r *DateTime) SetFlag(flag Flag, cumulative bool) {
	r.Configure(Decompose(flag), cumulative)
}

/*
SetBehavior switches between strict and fast behavior. Switching to
strict recomputes the derived fields.
*/
func (r *DateTime) SetBehavior(b Behavior) {
	if b != BehaviorUnset {
		r.cfg.Behavior = b
		r.touch()
	}
}

// truncate resets every field finer than the configured precision.
func (r *DateTime) truncate() {
	p := r.cfg.Precision
	if !p.Includes(PrecisionMonth) {
		r.month = defMonth
	}
	if !p.Includes(PrecisionDay) {
		r.day = defDay
	}
	if !p.Includes(PrecisionHour) {
		r.hour = defHour
	}
	if !p.Includes(PrecisionMinute) {
		r.minute = defMinute
	}
	if !p.Includes(PrecisionSecond) {
		r.second = defSecond
	}
	if !p.Includes(PrecisionHSecond) {
		r.hsec = defHSec
	}
}

// touch records a mutation: derived fields are recomputed under
// strict behavior and marked stale under fast behavior.
func (r *DateTime) touch() {
	r.weekdayFresh = false
	if r.cfg.Strict() {
		r.Recompute()
	} else {
		r.stale = true
	}
}

// set stores v into *dst, clearing the zero state only when v differs
// from the field default.
func (r *DateTime) set(dst *int, v, def int) {
	*dst = v
	if v != def {
		r.zero = false
	}
	r.touch()
}

/*
SetYear sets the year. Under strict behavior a year outside -1000
through 10000 is rejected with a [*FieldError].
*/
func (r *DateTime) SetYear(y int) (err error) {
	if r.cfg.Strict() {
		if err = yearRange(y); err != nil {
			return
		}
	}
	r.set(&r.year, y, defYear)
	return
}

/*
SetMonth sets the month. Under strict behavior a month outside 1
through 12 is rejected with a [*FieldError].
*/
func (r *DateTime) SetMonth(m int) (err error) {
	if r.cfg.Strict() {
		if err = monthRange(m); err != nil {
			return
		}
	}
	r.set(&r.month, m, defMonth)
	return
}

/*
SetDay sets the day of the month. Under strict behavior the day is
checked against the number of days in the current month and year, so
that February 29 is only accepted in a leap year.
*/
func (r *DateTime) SetDay(d int) (err error) {
	if r.cfg.Strict() {
		if err = dayRange(d, r.month, r.year); err != nil {
			return
		}
	}
	r.set(&r.day, d, defDay)
	return
}

/*
SetHour sets the hour. Under strict behavior an hour outside 0 through
23 is rejected with a [*FieldError].
*/
func (r *DateTime) SetHour(h int) (err error) {
	if r.cfg.Strict() {
		if err = hourRange(h); err != nil {
			return
		}
	}
	r.set(&r.hour, h, defHour)
	return
}

/*
SetMinute sets the minute. Unlike the date setters, an out-of-range
minute is never rejected: under strict behavior a warning is logged and
the value is stored as given.
*/
func (r *DateTime) SetMinute(m int) {
	// TODO: decide with downstream renderers whether this should
	// return an error like SetDay does.
	if r.cfg.Strict() && sixtyRange(m) != nil {
		warnRange("minute", m)
	}
	r.set(&r.minute, m, defMinute)
}

/*
SetSecond sets the second. As with [DateTime.SetMinute], out-of-range
input is only logged under strict behavior.
*/
func (r *DateTime) SetSecond(s int) {
	if r.cfg.Strict() && sixtyRange(s) != nil {
		warnRange("second", s)
	}
	r.set(&r.second, s, defSecond)
}

/*
SetHSecond sets the hundredths of a second. Out-of-range input is only
logged under strict behavior.
*/
func (r *DateTime) SetHSecond(h int) {
	if r.cfg.Strict() && hsecRange(h) != nil {
		warnRange("hsecond", h)
	}
	r.set(&r.hsec, h, defHSec)
}

/*
SetDate sets year, month and day together, validating the combination
under strict behavior before anything is stored.
*/
func (r *DateTime) SetDate(year, month, day int) (err error) {
	if r.cfg.Strict() {
		if err = yearRange(year); err == nil {
			if err = monthRange(month); err == nil {
				err = dayRange(day, month, year)
			}
		}
		if err != nil {
			return
		}
	}
	r.set(&r.year, year, defYear)
	r.set(&r.month, month, defMonth)
	r.set(&r.day, day, defDay)
	return
}

/*
SetTime sets hour, minute and second together. The hour is validated
under strict behavior; minute and second follow the lenient rules of
their individual setters.
*/
func (r *DateTime) SetTime(hour, minute, second int) (err error) {
	if err = r.SetHour(hour); err == nil {
		r.SetMinute(minute)
		r.SetSecond(second)
	}
	return
}

/*
Recompute refreshes the derived fields (leap year, day of year and
absolute month). Under strict behavior this happens after every
mutation; under fast behavior callers must invoke it explicitly, or
pass ensureFresh to the derived-field getters.
*/
func (r *DateTime) Recompute() {
	r.leap = IsLeap(r.year)
	r.yday = dayOfYear(r.year, r.month, r.day)
	r.absMonth = r.year*12 + r.month
	r.stale = false
}

/*
Stale returns true if the derived fields may not reflect the current
field values.
*/
func (r *DateTime) Stale() bool { return r.stale }

func (r *DateTime) fresh(ensure bool) {
	if ensure && r.stale {
		r.Recompute()
	}
}

/*
IsLeapYear returns the cached leap-year flag. If ensureFresh is true
and the cache is stale, it is recomputed first.
*/
func (r *DateTime) IsLeapYear(ensureFresh bool) bool {
	r.fresh(ensureFresh)
	return r.leap
}

/*
DayOfYear returns the cached day of the year (1 through 366). If
ensureFresh is true and the cache is stale, it is recomputed first.
*/
func (r *DateTime) DayOfYear(ensureFresh bool) int {
	r.fresh(ensureFresh)
	return r.yday
}

/*
AbsoluteMonth returns the cached value of year*12+month. If ensureFresh
is true and the cache is stale, it is recomputed first.
*/
func (r *DateTime) AbsoluteMonth(ensureFresh bool) int {
	r.fresh(ensureFresh)
	return r.absMonth
}

/*
ComputeWeekday computes, caches and returns the day of the week, 0
(Sunday) through 6 (Saturday). The weekday is never maintained
automatically.
*/
func (r *DateTime) ComputeWeekday() int {
	r.weekday = weekdayOf(r.year, r.month, r.day)
	r.weekdayFresh = true
	return r.weekday
}

/*
Weekday returns the weekday cached by the last call to
[DateTime.ComputeWeekday], and false if any mutation has happened
since.
*/
func (r *DateTime) Weekday() (int, bool) { return r.weekday, r.weekdayFresh }

/*
ToTime returns the receiver as a [time.Time] in a fixed zone. The zone
offset is resolved with res when the label is a named abbreviation; an
unset label yields UTC.
*/
func (r *DateTime) ToTime(res Resolver) (t time.Time, err error) {
	loc := time.UTC
	if r.zone != "" {
		var off int
		if off, err = offsetOf(r.zone, res); err != nil {
			return
		}
		loc = time.FixedZone(r.zone, off)
	}
	t = time.Date(r.year, time.Month(r.month), r.day, r.hour, r.minute,
		r.second, r.hsec*int(10*time.Millisecond), loc)
	return
}
