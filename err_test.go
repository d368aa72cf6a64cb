package dtplus

import (
	"errors"
	"testing"
)

func TestFormatError(t *testing.T) {
	for idx, c := range []struct {
		err  error
		cat  error
		want string
	}{
		{errorEmptyInput(""), ErrNullOrEmptyInput, `nil or empty input: ""`},
		{errorUnknownFormat("hello", FormatAutomatic, "no matching format"), ErrFormatUnrecognized,
			`unrecognized date/time format [automatic]: "hello" (no matching format)`},
		{errorUnknownFormat("x", FormatNone), ErrFormatUnrecognized, `unrecognized date/time format: "x"`},
		{errorRendering(FormatISO8601, "zone ", "EST"), ErrRendering, `value cannot be rendered [iso8601] (zone EST)`},
	} {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("%s[%d] failed:\n\twant: %s\n\tgot:  %s", t.Name(), idx, c.want, got)
		}
		if !errors.Is(c.err, c.cat) {
			t.Fatalf("%s[%d] failed: does not wrap %v", t.Name(), idx, c.cat)
		}
	}
}

func TestFieldError(t *testing.T) {
	err := errorField("month", 13, "2020-13-01")
	if got, want := err.Error(), `field value out of range: month=13 in "2020-13-01"`; got != want {
		t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), want, got)
	}
	if !errors.Is(err, ErrFieldOutOfRange) {
		t.Fatalf("%s failed: does not wrap ErrFieldOutOfRange", t.Name())
	}

	bare := withInput(errorField("day", 0), "")
	if got, want := bare.Error(), `field value out of range: day=0`; got != want {
		t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), want, got)
	}
}

func TestZoneError(t *testing.T) {
	err := errorZone("XYZ")
	if got, want := err.Error(), `unrecognized time zone: "XYZ"`; got != want {
		t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), want, got)
	}

	cause := errors.New("lookup failed")
	wrapped := errorZone("ABC", cause)
	if !errors.Is(wrapped, ErrTimeZoneUnrecognized) || !errors.Is(wrapped, cause) {
		t.Fatalf("%s failed: both the category and the cause must match", t.Name())
	}
	if got, want := wrapped.Error(), `unrecognized time zone: "ABC": lookup failed`; got != want {
		t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), want, got)
	}
}

func TestConfigAndResolverErrors(t *testing.T) {
	if got := errorStrictAndFast.Error(); got != `CONFIG ERROR: strict and fast are mutually exclusive` {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
	if got := resolverErrorf("zone ", "X", ": ", errors.New("bad")).Error(); got != `RESOLVER ERROR: zone X: bad` {
		t.Fatalf("%s failed: got %s", t.Name(), got)
	}
}

func TestMkerrf(t *testing.T) {
	if mkerrf() != nil {
		t.Fatalf("%s failed: empty input should produce nil", t.Name())
	}
	err := mkerrf("value ", 5, " at ", PrecisionDay, " in ", FormatDate, " ", struct{}{})
	if got, want := err.Error(), "value 5 at day in date <not supported>"; got != want {
		t.Fatalf("%s failed:\n\twant: %s\n\tgot:  %s", t.Name(), want, got)
	}
}
