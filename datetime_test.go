package dtplus

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleDateTime_SetDay() {
	dt := New()
	_ = dt.SetYear(1900)
	_ = dt.SetMonth(2)

	err := dt.SetDay(29)
	fmt.Println(err)
	// Output: field value out of range: day=29
}

func ExampleDateTime_IsZero() {
	dt := New()
	_ = dt.SetMonth(1) // the default, so still zero
	fmt.Println(dt.IsZero())
	_ = dt.SetMonth(2)
	fmt.Println(dt.IsZero())
	// Output:
	// true
	// false
}

// captureLog routes package warnings into a buffer for the
// duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel}))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func fields(dt *DateTime) [7]int {
	return [7]int{dt.Year(), dt.Month(), dt.Day(), dt.Hour(), dt.Minute(), dt.Second(), dt.HSecond()}
}

func TestNew_defaults(t *testing.T) {
	dt := New()
	if !dt.IsZero() {
		t.Fatalf("%s failed: new instance should be zero", t.Name())
	}
	if got, want := fields(dt), [7]int{0, 1, 1, 0, 0, 0, 0}; got != want {
		t.Fatalf("%s failed:\n\twant: %v\n\tgot:  %v", t.Name(), want, got)
	}
	assert.Equal(t, PrecisionHSecond, dt.Precision())
	assert.True(t, dt.Strict())
	assert.False(t, dt.TimeOnly())
	assert.False(t, dt.UseTimeZone())
	assert.Empty(t, dt.TimeZone())
	assert.False(t, dt.Stale())
}

func TestNew_current(t *testing.T) {
	fixed := time.Date(2024, 7, 4, 13, 14, 15, 999_000_000, time.UTC)
	saved := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = saved })

	dt := New(Config{Init: InitCurrent})
	assert.False(t, dt.IsZero())
	assert.Equal(t, [7]int{2024, 7, 4, 13, 14, 15, 0}, fields(dt))
	assert.Equal(t, "UTC", dt.TimeZone())

	// precision is applied to the wall clock
	coarse := New(Config{Init: InitCurrent, Precision: PrecisionDay})
	assert.Equal(t, [7]int{2024, 7, 4, 0, 0, 0, 0}, fields(coarse))
}

func TestNewFlag(t *testing.T) {
	dt := NewFlag(Flag(PrecisionDay) | FlagFast | FlagTimeOnly)
	assert.Equal(t, PrecisionDay, dt.Precision())
	assert.False(t, dt.Strict())
	assert.True(t, dt.TimeOnly())
}

func TestDateTime_zeroQuirk(t *testing.T) {
	dt := New()
	require.NoError(t, dt.SetDay(1))
	require.NoError(t, dt.SetHour(0))
	dt.SetMinute(0)
	assert.True(t, dt.IsZero(), "setting defaults must not clear zero")

	require.NoError(t, dt.SetDay(2))
	assert.False(t, dt.IsZero())

	// once cleared, zero is never restored by setting defaults back
	require.NoError(t, dt.SetDay(1))
	assert.False(t, dt.IsZero())

	added := New()
	added.AddDay(0)
	assert.False(t, added.IsZero(), "arithmetic always clears zero")
}

func TestDateTime_leapDay(t *testing.T) {
	for _, c := range []struct {
		year int
		ok   bool
	}{
		{2000, true},
		{2020, true},
		{1900, false},
		{2021, false},
	} {
		dt := New()
		require.NoError(t, dt.SetYear(c.year))
		require.NoError(t, dt.SetMonth(2))
		err := dt.SetDay(29)
		if c.ok {
			if err != nil {
				t.Fatalf("%s failed [%d]: %v", t.Name(), c.year, err)
			}
			continue
		}

		var fe *FieldError
		if !errors.As(err, &fe) {
			t.Fatalf("%s failed [%d]: expected *FieldError, got %T", t.Name(), c.year, err)
		}
		assert.Equal(t, "day", fe.Field)
		assert.Equal(t, 29, fe.Value)
		assert.ErrorIs(t, err, ErrFieldOutOfRange)
		assert.Equal(t, 1, dt.Day(), "rejected value must not be stored")
	}
}

func TestDateTime_strictSetters(t *testing.T) {
	dt := New()
	assert.Error(t, dt.SetYear(10001))
	assert.Error(t, dt.SetYear(-1001))
	assert.Error(t, dt.SetMonth(0))
	assert.Error(t, dt.SetMonth(13))
	assert.Error(t, dt.SetDay(32))
	assert.Error(t, dt.SetHour(24))
	assert.Error(t, dt.SetDate(2021, 2, 29))
	assert.True(t, dt.IsZero(), "no rejected setter may mutate")

	require.NoError(t, dt.SetDate(2020, 2, 29))
	require.NoError(t, dt.SetTime(23, 59, 58))
	assert.Equal(t, [7]int{2020, 2, 29, 23, 59, 58, 0}, fields(dt))
}

func TestDateTime_lenientSetters(t *testing.T) {
	buf := captureLog(t)

	dt := New()
	dt.SetMinute(75)
	dt.SetSecond(-1)
	dt.SetHSecond(100)

	assert.Equal(t, 75, dt.Minute(), "minute is stored despite the warning")
	assert.Equal(t, -1, dt.Second())
	assert.Equal(t, 100, dt.HSecond())

	out := buf.String()
	assert.Contains(t, out, "field value out of range")
	assert.Contains(t, out, "minute")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "hsecond")

	buf.Reset()
	fast := New(Config{Behavior: BehaviorFast})
	fast.SetMinute(75)
	assert.Empty(t, buf.String(), "fast behavior never logs")
}

func TestDateTime_fastBehavior(t *testing.T) {
	dt := New(Config{Behavior: BehaviorFast})

	require.NoError(t, dt.SetMonth(13), "fast behavior does not validate")
	require.NoError(t, dt.SetHour(30))

	require.NoError(t, dt.SetYear(2020))
	require.NoError(t, dt.SetMonth(3))
	require.NoError(t, dt.SetDay(1))
	assert.True(t, dt.Stale())

	if got := dt.DayOfYear(false); got != 1 {
		t.Fatalf("%s failed: stale day of year want 1, got %d", t.Name(), got)
	}
	if got := dt.DayOfYear(true); got != 61 {
		t.Fatalf("%s failed: fresh day of year want 61, got %d", t.Name(), got)
	}
	assert.False(t, dt.Stale())
	assert.True(t, dt.IsLeapYear(false))
	assert.Equal(t, 2020*12+3, dt.AbsoluteMonth(false))

	dt.SetBehavior(BehaviorStrict)
	require.NoError(t, dt.SetYear(2021))
	assert.False(t, dt.Stale())
	assert.False(t, dt.IsLeapYear(false))
	assert.Equal(t, 60, dt.DayOfYear(false))
}

func TestDateTime_weekday(t *testing.T) {
	dt := New()
	require.NoError(t, dt.SetDate(2020, 1, 15))

	_, ok := dt.Weekday()
	assert.False(t, ok, "weekday is never computed implicitly")

	assert.Equal(t, 3, dt.ComputeWeekday()) // Wednesday
	wd, ok := dt.Weekday()
	assert.True(t, ok)
	assert.Equal(t, 3, wd)

	dt.AddDay(1)
	_, ok = dt.Weekday()
	assert.False(t, ok)
}

func TestDateTime_SetPrecision(t *testing.T) {
	dt := New()
	require.NoError(t, dt.SetDate(2020, 6, 15))
	require.NoError(t, dt.SetTime(10, 30, 45))
	dt.SetHSecond(12)

	dt.SetPrecision(PrecisionHour)
	assert.Equal(t, [7]int{2020, 6, 15, 10, 0, 0, 0}, fields(dt))

	dt.SetPrecision(PrecisionUnset)
	assert.Equal(t, PrecisionHour, dt.Precision(), "invalid precision ignored")

	dt.SetPrecision(PrecisionYear)
	assert.Equal(t, [7]int{2020, 1, 1, 0, 0, 0, 0}, fields(dt))
}

func TestDateTime_Configure(t *testing.T) {
	dt := New(Config{TimeOnly: true})
	dt.Configure(Config{UseTimeZone: true}, true)
	assert.True(t, dt.TimeOnly())
	assert.True(t, dt.UseTimeZone())

	dt.Configure(Config{Precision: PrecisionMinute}, false)
	assert.False(t, dt.TimeOnly())
	assert.False(t, dt.UseTimeZone())
	assert.Equal(t, PrecisionMinute, dt.Precision())

	dt.SetFlag(FlagFast|FlagTimeOnly, true)
	assert.False(t, dt.Strict())
	assert.True(t, dt.TimeOnly())
	assert.Equal(t, PrecisionMinute, dt.Precision())
}

func TestDateTime_Copy(t *testing.T) {
	dt := New()
	require.NoError(t, dt.SetDate(2020, 6, 15))
	dt.SetTimeZone("EST")

	cp := dt.Copy()
	require.NoError(t, cp.SetDay(16))
	cp.SetTimeZone("PST")

	assert.Equal(t, 15, dt.Day())
	assert.Equal(t, "EST", dt.TimeZone())
	assert.Equal(t, 16, cp.Day())

	var nilDT *DateTime
	assert.Nil(t, nilDT.Copy())
}

func TestFromTime(t *testing.T) {
	tm := time.Date(2021, 3, 4, 5, 6, 7, 890_000_000, time.FixedZone("", -7*3600))
	dt := FromTime(tm)

	assert.Equal(t, [7]int{2021, 3, 4, 5, 6, 7, 0}, fields(dt))
	assert.Equal(t, "-07:00", dt.TimeZone())
	assert.Equal(t, PrecisionSecond, dt.Precision())
	assert.False(t, dt.IsZero())

	named := FromTime(tm.In(time.FixedZone("MST", -7*3600)), Config{Precision: PrecisionDay})
	assert.Equal(t, "MST", named.TimeZone())
	assert.Equal(t, PrecisionDay, named.Precision())
	assert.Equal(t, 0, named.Hour())
}

func TestDateTime_ToTime(t *testing.T) {
	res := NewTableResolver()
	defer res.Close()

	dt := New()
	require.NoError(t, dt.SetDate(2020, 1, 15))
	require.NoError(t, dt.SetTime(10, 30, 0))
	dt.SetHSecond(25)

	utc, err := dt.ToTime(res)
	require.NoError(t, err)
	assert.True(t, utc.Equal(time.Date(2020, 1, 15, 10, 30, 0, 250_000_000, time.UTC)))

	dt.SetTimeZone("EST")
	est, err := dt.ToTime(res)
	require.NoError(t, err)
	assert.True(t, est.Equal(time.Date(2020, 1, 15, 15, 30, 0, 250_000_000, time.UTC)))

	dt.SetTimeZone("+05:30")
	ist, err := dt.ToTime(nil)
	require.NoError(t, err)
	assert.True(t, ist.Equal(time.Date(2020, 1, 15, 5, 0, 0, 250_000_000, time.UTC)))

	dt.SetTimeZone("Nowhere/Land")
	_, err = dt.ToTime(res)
	assert.ErrorIs(t, err, ErrTimeZoneUnrecognized)
}
