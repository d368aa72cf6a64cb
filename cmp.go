package dtplus

/*
cmp.go implements precision-bounded ordinal comparison. The precision
of the receiver, never that of the operand, decides where comparison
stops, and time zone labels are never consulted; normalize zones with
[DateTime.ShiftTimeZone] first when they may differ.
*/

// compare returns -1, 0 or 1. Fields finer than the receiver's
// precision are not examined, and date fields are skipped entirely
// when the receiver is time-only.
func (r *DateTime) compare(o *DateTime) int {
	p := r.cfg.Precision

	type pair struct {
		prec Precision
		a, b int
	}

	fields := [...]pair{
		{PrecisionYear, r.year, o.year},
		{PrecisionMonth, r.month, o.month},
		{PrecisionDay, r.day, o.day},
		{PrecisionHour, r.hour, o.hour},
		{PrecisionMinute, r.minute, o.minute},
		{PrecisionSecond, r.second, o.second},
		{PrecisionHSecond, r.hsec, o.hsec},
	}

	start := 0
	if r.cfg.TimeOnly {
		start = 3
	}

	for i := start; i < len(fields); i++ {
		f := fields[i]
		if !p.Includes(f.prec) {
			break
		}
		if f.a != f.b {
			return sign(f.a - f.b)
		}
	}

	return 0
}

/*
GreaterThan returns true if the receiver is later than o at the
receiver's precision.
*/
func (r *DateTime) GreaterThan(o *DateTime) bool { return r.compare(o) > 0 }

/*
LessThan returns true if the receiver is earlier than o at the
receiver's precision.
*/
func (r *DateTime) LessThan(o *DateTime) bool { return r.compare(o) < 0 }

/*
LessThanOrEqualTo is defined as the negation of [DateTime.GreaterThan]
and not as "LessThan or EqualTo".
*/
func (r *DateTime) LessThanOrEqualTo(o *DateTime) bool { return !r.GreaterThan(o) }

/*
GreaterThanOrEqualTo is defined as the negation of [DateTime.LessThan].
*/
func (r *DateTime) GreaterThanOrEqualTo(o *DateTime) bool { return !r.LessThan(o) }

/*
EqualTo returns true if neither value precedes the other at the
receiver's precision.
*/
func (r *DateTime) EqualTo(o *DateTime) bool { return r.compare(o) == 0 }

/*
Compare returns -1, 0 or +1 depending on whether the receiver precedes,
equals or follows o at the receiver's precision. It is suitable for use
with [slices.SortFunc] when all values share one precision.
*/
func Compare(a, b *DateTime) int { return a.compare(b) }
