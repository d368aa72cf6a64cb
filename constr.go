package dtplus

/*
constr.go contains constraint and constraint group components which
serve both the internal field-range checks and user-supplied rules
applied to parsed values.
*/

import "golang.org/x/exp/constraints"

/*
Constraint implements a generic closure function signature meant to enforce
the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice instances
are added (and, thus, evaluated) in the order in which they are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint] instances
against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a value
of any ordered type is between the specified minimum and maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = mkerr("value is out of range")
		}
		return
	}
}

// fieldConstraint wraps an integer range check so that a violation
// surfaces as a *FieldError naming the field.
func fieldConstraint[T constraints.Integer](field string, min, max T) Constraint[T] {
	inner := RangeConstraint(min, max)
	return func(v T) (err error) {
		if inner(v) != nil {
			err = errorField(field, int(v))
		}
		return
	}
}

var (
	yearRange   = fieldConstraint("year", minYear, maxYear)
	monthRange  = fieldConstraint("month", 1, 12)
	hourRange   = fieldConstraint("hour", 0, 23)
	minuteRange = fieldConstraint("minute", 0, 59)
	secondRange = fieldConstraint("second", 0, 59)
	hsecRange   = fieldConstraint("hsecond", 0, 99)
)

// sixtyRange is shared by the lenient minute and second setters,
// which only care whether a warning is due.
func sixtyRange(v int) error { return RangeConstraint(0, 59)(v) }

func dayRange(d, month, year int) error {
	max := DaysIn(month, year)
	if max == 0 {
		max = 31
	}
	return fieldConstraint("day", 1, max)(d)
}

/*
PrecisionConstraint returns a [Constraint] which rejects a *[DateTime]
whose precision is coarser than min.
*/
func PrecisionConstraint(min Precision) Constraint[*DateTime] {
	return func(dt *DateTime) (err error) {
		if dt.Precision().Coarser(min) {
			err = mkerrf("precision ", dt.Precision(), " is coarser than required ", min)
		}
		return
	}
}

/*
BetweenConstraint returns a [Constraint] which rejects a *[DateTime]
falling before lo or after hi. Comparison is performed at the
precision of the value under test; see [DateTime.LessThan].
*/
func BetweenConstraint(lo, hi *DateTime) Constraint[*DateTime] {
	return func(dt *DateTime) (err error) {
		if dt.LessThan(lo) || dt.GreaterThan(hi) {
			err = mkerrf("time ", dt.String(), " is not in allowed range [",
				lo.String(), ", ", hi.String(), "]")
		}
		return
	}
}

/*
FieldConstraint returns a [Constraint] which applies c to the value of
a single field of a *[DateTime], selected by getter, e.g.:

	weekdaysOnly := FieldConstraint((*DateTime).ComputeWeekday, RangeConstraint(1, 5))
*/
func FieldConstraint(getter func(*DateTime) int, c Constraint[int]) Constraint[*DateTime] {
	return LiftConstraint(getter, c)
}

/*
Intersection returns an instance of [Constraint] which checks if all of the
specified constraints are satisfied. Essentially, this is an "AND"ed operation.
*/
func Intersection[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		for i := 0; i < len(constraints) && err == nil; i++ {
			err = constraints[i](x)
		}
		return
	}
}

/*
Union returns an instance of [Constraint] which checks if at least one (1)
of the provided constraints is satisfied. Essentially, this is an "OR"ed
operation.
*/
func Union[T any](constraints ...Constraint[T]) Constraint[T] {
	return func(x T) (err error) {
		var passed bool
		for i := 0; i < len(constraints) && !passed; i++ {
			passed = constraints[i](x) == nil
		}

		if !passed {
			err = mkerrf("union failed all ", len(constraints), " constraints")
		}
		return
	}
}
