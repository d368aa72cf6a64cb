package dtplus

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

/*
Error categories. Parsing, formatting, field validation and zone
resolution errors wrap exactly one of these sentinels, so callers may
test with [errors.Is]. Configuration and resolver lifecycle errors
carry a "CONFIG ERROR: " or "RESOLVER ERROR: " prefix instead, and
errors from caller-supplied constraints are returned as they are.
*/
var (
	ErrFormatUnrecognized   error = mkerr("unrecognized date/time format")
	ErrFieldOutOfRange      error = mkerr("field value out of range")
	ErrNullOrEmptyInput     error = mkerr("nil or empty input")
	ErrTimeZoneUnrecognized error = mkerr("unrecognized time zone")
	ErrRendering            error = mkerr("value cannot be rendered")
)

/*
config errors.
*/
var (
	errorEmptyConfig       = configErr{mkerr("configuration string missing or truncated")}
	errorStrictAndFast     = configErr{mkerr("strict and fast are mutually exclusive")}
	errorZeroAndCurrent    = configErr{mkerr("zero and current are mutually exclusive")}
	errorResolverClosed    = resolverErr{mkerr("resolver has been closed")}
	errorResolverNilReader = resolverErr{mkerr("nil reader")}
)

/*
types which implement the error interface.
*/
type (
	configErr   struct{ e error }
	resolverErr struct{ e error }
)

func configErrorf(m ...any) error   { return configErr{mkerrf(m...)} }
func resolverErrorf(m ...any) error { return resolverErr{mkerrf(m...)} }

func (r configErr) Error() string   { return `CONFIG ERROR: ` + r.e.Error() }
func (r resolverErr) Error() string { return `RESOLVER ERROR: ` + r.e.Error() }

/*
FormatError is returned when input text cannot be matched to, or
tokenized by, a known [Format]. It wraps [ErrFormatUnrecognized] or
[ErrNullOrEmptyInput].
*/
type FormatError struct {
	Input  string
	Format Format
	Reason string
	cat    error
}

func (r *FormatError) Error() string {
	b := newStrBuilder()
	b.WriteString(r.cat.Error())
	if r.Format != FormatNone {
		b.WriteString(" [" + r.Format.String() + "]")
	}
	if r.Input != "" || r.cat != ErrRendering {
		b.WriteString(`: "` + r.Input + `"`)
	}
	if r.Reason != "" {
		b.WriteString(" (" + r.Reason + ")")
	}
	return b.String()
}

func (r *FormatError) Unwrap() error { return r.cat }

/*
FieldError is returned when a single field violates its valid range.
Input is populated when the value originated from parsed text. It wraps
[ErrFieldOutOfRange].
*/
type FieldError struct {
	Field string
	Value int
	Input string
}

func (r *FieldError) Error() string {
	msg := ErrFieldOutOfRange.Error() + ": " + r.Field + "=" + itoa(r.Value)
	if r.Input != "" {
		msg += ` in "` + r.Input + `"`
	}
	return msg
}

func (r *FieldError) Unwrap() error { return ErrFieldOutOfRange }

/*
ZoneError is returned when a time zone label cannot be resolved to an
offset. It wraps [ErrTimeZoneUnrecognized].
*/
type ZoneError struct {
	Label string
	Err   error
}

func (r *ZoneError) Error() string {
	msg := ErrTimeZoneUnrecognized.Error() + `: "` + r.Label + `"`
	if r.Err != nil {
		msg += ": " + r.Err.Error()
	}
	return msg
}

func (r *ZoneError) Unwrap() []error {
	if r.Err == nil {
		return []error{ErrTimeZoneUnrecognized}
	}
	return []error{ErrTimeZoneUnrecognized, r.Err}
}

func errorEmptyInput(s string) error {
	return &FormatError{Input: s, cat: ErrNullOrEmptyInput}
}

func errorUnknownFormat(s string, f Format, reason ...any) error {
	return &FormatError{Input: s, Format: f, Reason: mkstr(reason...), cat: ErrFormatUnrecognized}
}

func errorRendering(f Format, reason ...any) error {
	return &FormatError{Format: f, Reason: mkstr(reason...), cat: ErrRendering}
}

func errorField(field string, v int, input ...string) error {
	fe := &FieldError{Field: field, Value: v}
	if len(input) > 0 {
		fe.Input = input[0]
	}
	return fe
}

func errorZone(label string, err ...error) error {
	ze := &ZoneError{Label: label}
	if len(err) > 0 {
		ze.Err = err[0]
	}
	return ze
}

func mkstr(parts ...any) string {
	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case Format:
			b.WriteString(v.String())
		case Precision:
			b.WriteString(v.String())
		default:
			b.WriteString("<not supported>")
		}
	}
	return b.String()
}

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}
	return mkerr(mkstr(parts...))
}
