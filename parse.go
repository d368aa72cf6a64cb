package dtplus

/*
parse.go implements text parsing, both for an explicitly named Format
and with heuristic format auto-detection.
*/

/*
Parse returns a new *[DateTime] alongside an error following an attempt
to auto-detect the format of s and parse it. The optional constraints
are applied, in order, to the parsed value.

See [DateTime.Parse] for the detection rules.
*/
func Parse(s string, constraints ...Constraint[*DateTime]) (*DateTime, error) {
	dt := New()
	err := dt.Parse(s)
	if err == nil && len(constraints) > 0 {
		var group ConstraintGroup[*DateTime] = constraints
		err = group.Constrain(dt)
	}
	if err != nil {
		return nil, err
	}
	return dt, nil
}

/*
ParseFormat returns a new *[DateTime] alongside an error following an
attempt to parse s as format f, using the optional template variant.
*/
func ParseFormat(s string, f Format, variant ...int) (*DateTime, error) {
	dt := New()
	if err := dt.ParseFormat(s, f, variant...); err != nil {
		return nil, err
	}
	return dt, nil
}

/*
Parse auto-detects the format of s and populates the receiver from it.

A trailing time zone token is first split off: the text following the
last space is taken as a zone label if its first character is a letter.
The remainder is then matched against the detection rules in their
fixed priority order (see [DetectFormat]).

On success the precision of the receiver becomes that of the detected
format, the time-only setting follows the format, and a detected zone
label enables time zone use. On failure the receiver is unchanged.
*/
func (r *DateTime) Parse(s string) error {
	if s = trimS(s); s == "" {
		return errorEmptyInput(s)
	}

	body, zone := splitZone(s)
	f, variant, ok := detect(body)
	if !ok {
		return errorUnknownFormat(s, FormatAutomatic, "no matching format")
	}
	if f == FormatISO8601 {
		return r.parseISO(s, body, zone)
	}
	return r.parseTemplate(s, body, zone, f, variant)
}

/*
ParseFormat populates the receiver from s parsed as format f. The
variant selects among the templates registered for f (default
[VariantPadded]); see [Format.Template].

[FormatAutomatic] behaves as [DateTime.Parse]. [FormatNone] and codes
which are not registered are rejected with an error wrapping
[ErrFormatUnrecognized].
*/
func (r *DateTime) ParseFormat(s string, f Format, variant ...int) error {
	if s = trimS(s); s == "" {
		return errorEmptyInput(s)
	}

	switch {
	case f == FormatAutomatic:
		return r.Parse(s)
	case f == FormatISO8601:
		body, zone := splitZone(s)
		return r.parseISO(s, body, zone)
	case f == FormatNone || !f.Known():
		return errorUnknownFormat(s, f, "unknown format code")
	}

	v := 0
	if len(variant) > 0 {
		v = variant[0]
	}
	if f.Template(v) == "" {
		return errorUnknownFormat(s, f, "no template for variant ", v)
	}

	body, zone := splitZone(s)
	return r.parseTemplate(s, body, zone, f, v)
}

/*
DetectFormat returns the [Format] and template variant which
[DateTime.Parse] would select for s, and false if none matches. A
trailing zone token is ignored.

Rules are evaluated in this fixed order, the first match winning:

  - ISO 8601: a 'T' preceded only by a (possibly empty) date of 4, 6, 7, 8 or 10 characters
  - YYYY, HH
  - MM/DD and its variants, HH:mm
  - YYYY-MM, MM/YYYY and M/YYYY
  - YYYYMMDD, HH:mm:SS, MM/DD/YY and its variants
  - YYYY-MM-DD, YYYY/MM/DD, MM/DD/YYYY and its variants, MM-DD-YYYY, DD.MM.YYYY
  - HH:mm:SS.ss, DD-Mon-YYYY
  - YYYYMMDDHHmm, YYYY-MM-DD HH, YYYYMMDDHHmmSS
  - YYYY-MM-DD HH:mm, MM/DD/YYYY HH:mm and variants, DD.MM.YYYY HH:mm
  - YYYY-MM-DD HH:mm:SS, YYYY/MM/DD HH:mm:SS, MM/DD/YYYY HH:mm:SS and variants, DD-Mon-YYYY HH:mm:SS
  - YYYY-MM-DD HH:mm:SS.ss

Each non-ISO rule matches on length and on the exact position of
every separator, so that, for instance, five-character input resolves
to MM/DD when its third character is '/' and to HH:mm when it is ':'.
*/
func DetectFormat(s string) (Format, int, bool) {
	body, _ := splitZone(trimS(s))
	return detect(body)
}

// detectOrder is the load-bearing priority order of auto-detection.
// Do not reorder without considering historically ambiguous input.
var detectOrder = []Format{
	FormatISO8601,
	FormatYear,
	FormatHour,
	FormatMonthDay,
	FormatHourMinute,
	FormatYearMonth,
	FormatMonthYear,
	FormatCompactDate,
	FormatTime,
	FormatUSShortDate,
	FormatDate,
	FormatSlashDate,
	FormatUSDate,
	FormatDashUSDate,
	FormatEuroDate,
	FormatTimeHSecond,
	FormatDayMonthNameYear,
	FormatCompactMinute,
	FormatDateHour,
	FormatCompactDateTime,
	FormatDateMinute,
	FormatUSDateMinute,
	FormatEuroDateMinute,
	FormatDateSecond,
	FormatSlashDateSecond,
	FormatUSDateSecond,
	FormatDayMonthNameYearSecond,
	FormatDateHSecond,
}

type detectRule struct {
	format  Format
	variant int
	match   func(string) bool
}

var detectRules = buildDetectRules()

func buildDetectRules() (rules []detectRule) {
	for _, f := range detectOrder {
		if f == FormatISO8601 {
			rules = append(rules, detectRule{format: f, match: isISOCandidate})
			continue
		}
		for v, tmpl := range layouts[f].templates {
			rules = append(rules, detectRule{format: f, variant: v, match: shaped(tmpl)})
		}
	}
	return
}

func detect(s string) (Format, int, bool) {
	for _, rule := range detectRules {
		if rule.match(s) {
			return rule.format, rule.variant, true
		}
	}
	return FormatNone, 0, false
}

// shaped returns a predicate matching input of the same length as
// tmpl, with a digit wherever tmpl has a numeric field, a letter for
// each month-name position, and identical separators elsewhere.
func shaped(tmpl string) func(string) bool {
	return func(s string) bool {
		if len(s) != len(tmpl) {
			return false
		}
		for i := 0; i < len(s); i++ {
			switch c := tmpl[i]; {
			case c == 'N':
				if !isLetter(s[i]) {
					return false
				}
			case isFieldLetter(c):
				if !isDigit(s[i]) {
					return false
				}
			case s[i] != c:
				return false
			}
		}
		return true
	}
}

func isISOCandidate(s string) bool {
	i := stridxb(s, 'T')
	if i < 0 || i+1 >= len(s) || !isDigit(s[i+1]) {
		return false
	}
	switch i {
	case 0, 4, 6, 7, 8, 10:
	default:
		return false
	}
	for j := 0; j < i; j++ {
		if !isDigit(s[j]) && s[j] != '-' {
			return false
		}
	}
	return true
}

// splitZone separates a trailing zone abbreviation from s.
func splitZone(s string) (body, zone string) {
	body = s
	if i := strlidxb(s, ' '); i >= 0 && i+1 < len(s) && isLetter(s[i+1]) {
		body, zone = trimS(s[:i]), s[i+1:]
	}
	return
}

func (r *DateTime) parseTemplate(input, body, zone string, f Format, variant int) error {
	tmpl := f.Template(variant)
	l := layouts[f]

	scratch := newScratch()
	if err := extract(tmpl, body, scratch); err != nil {
		return errorUnknownFormat(input, f, err)
	}
	if err := scratch.validate(l.precision, l.timeOnly); err != nil {
		return withInput(err, input)
	}

	r.commit(scratch, l.precision, l.timeOnly, zone)
	return nil
}

func newScratch() *DateTime {
	return &DateTime{year: defYear, month: defMonth, day: defDay, cfg: DefaultConfig()}
}

// extract tokenizes s according to tmpl, storing each field into dt.
func extract(tmpl, s string, dt *DateTime) error {
	if len(s) != len(tmpl) {
		return mkerrf("expected ", len(tmpl), " characters for ", tmpl)
	}

	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		w := runLen(tmpl, i)
		tok := s[i : i+w]

		switch {
		case c == 'N':
			m := monthByAbbrev(tok)
			if m == 0 {
				return mkerrf("unknown month name ", tok)
			}
			dt.month = m
		case isFieldLetter(c):
			v, ok := digits(tok)
			if !ok {
				return mkerrf("expected digits at offset ", i, ", got ", tok)
			}
			dt.store(c, v, w)
		case tok != tmpl[i:i+w]:
			return mkerrf("expected ", tmpl[i:i+w], " at offset ", i, ", got ", tok)
		}
		i += w
	}

	return nil
}

func (r *DateTime) store(field byte, v, width int) {
	switch field {
	case 'Y':
		if width == 2 {
			v = windowYear(v)
		}
		r.year = v
	case 'M':
		r.month = v
	case 'D':
		r.day = v
	case 'H':
		r.hour = v
	case 'm':
		r.minute = v
	case 'S':
		r.second = v
	case 's':
		r.hsec = v
	}
}

// windowYear maps a two-digit year: 00-49 to 20xx, 50-99 to 19xx.
func windowYear(yy int) int {
	if yy < 50 {
		return 2000 + yy
	}
	return 1900 + yy
}

func monthByAbbrev(s string) int {
	for m := 1; m <= 12; m++ {
		if streqf(s, monthAbbrevs[m]) {
			return m
		}
	}
	return 0
}

// validate checks each field from coarse to fine, stopping at p. An
// hour of 24 becomes hour 0 of the following day before the hour is
// range checked; time-only values have no following day to carry into.
func (r *DateTime) validate(p Precision, timeOnly bool) (err error) {
	if !timeOnly {
		if err = yearRange(r.year); err != nil || p == PrecisionYear {
			return
		}
		if err = monthRange(r.month); err != nil || p == PrecisionMonth {
			return
		}
		if err = dayRange(r.day, r.month, r.year); err != nil || p == PrecisionDay {
			return
		}
	} else if p.Coarser(PrecisionHour) {
		return
	}

	if r.hour == 24 {
		r.hour = 0
		if !timeOnly {
			r.addDays(1)
		}
	}

	checks := []struct {
		prec  Precision
		check Constraint[int]
		val   int
	}{
		{PrecisionHour, hourRange, r.hour},
		{PrecisionMinute, minuteRange, r.minute},
		{PrecisionSecond, secondRange, r.second},
		{PrecisionHSecond, hsecRange, r.hsec},
	}
	for _, c := range checks {
		if err = c.check(c.val); err != nil || p == c.prec {
			return
		}
	}

	return
}

func withInput(err error, input string) error {
	var fe *FieldError
	if errorsAs(err, &fe) {
		fe.Input = input
	}
	return err
}

// commit copies parsed fields from scratch into the receiver and
// applies the parsed precision, time-only setting and zone.
func (r *DateTime) commit(scratch *DateTime, p Precision, timeOnly bool, zone string) {
	wasZero := r.zero

	r.year, r.month, r.day = scratch.year, scratch.month, scratch.day
	r.hour, r.minute, r.second, r.hsec = scratch.hour, scratch.minute, scratch.second, scratch.hsec
	r.zone = zone
	r.cfg.Precision = p
	r.cfg.TimeOnly = timeOnly
	if zone != "" {
		r.cfg.UseTimeZone = true
	}
	r.truncate()

	r.zero = wasZero && r.allDefault()
	r.touch()
}

func (r *DateTime) allDefault() bool {
	return r.year == defYear && r.month == defMonth && r.day == defDay &&
		r.hour == defHour && r.minute == defMinute && r.second == defSecond &&
		r.hsec == defHSec
}
