package dtplus

/*
format.go contains the catalog of textual formats and the formatter.

Each fixed-width format is described by one or more templates. Within a
template, runs of the following letters denote fields whose width is
the length of the run; every other character is a literal separator:

	Y  year (a run of two is a two-digit year)
	M  month
	N  English three-letter month abbreviation (always NNN)
	D  day of month
	H  hour
	m  minute
	S  second
	s  hundredths of a second

Templates beyond the first of a format are variants for input whose
month and day widths vary, e.g. "M/D/YYYY" alongside "MM/DD/YYYY".
*/

/*
Format identifies one of the registered textual date/time formats.
*/
type Format int

const (
	FormatNone Format = iota
	FormatAutomatic
	FormatYear
	FormatYearMonth
	FormatDate
	FormatDateHour
	FormatDateMinute
	FormatDateSecond
	FormatDateHSecond
	FormatCompactDate
	FormatCompactMinute
	FormatCompactDateTime
	FormatSlashDate
	FormatSlashDateSecond
	FormatMonthDay
	FormatMonthYear
	FormatUSDate
	FormatUSDateMinute
	FormatUSDateSecond
	FormatUSShortDate
	FormatDashUSDate
	FormatEuroDate
	FormatEuroDateMinute
	FormatHour
	FormatHourMinute
	FormatTime
	FormatTimeHSecond
	FormatDayMonthNameYear
	FormatDayMonthNameYearSecond
	FormatISO8601
)

/*
Variant indices shared by every format whose month and day widths may
differ from two digits.
*/
const (
	VariantPadded     = iota // MM/DD
	VariantShort             // M/D
	VariantShortMonth        // M/DD
	VariantShortDay          // MM/D
)

type layout struct {
	name      string
	templates []string
	precision Precision
	timeOnly  bool
}

// usVariants expands a month-first template beginning with "MM/DD"
// into all four month/day width variants, in Variant order.
func usVariants(tmpl string) []string {
	rest := trimPfx(tmpl, "MM/DD")
	return []string{"MM/DD" + rest, "M/D" + rest, "M/DD" + rest, "MM/D" + rest}
}

var layouts = map[Format]layout{
	FormatNone:                   {name: "none"},
	FormatAutomatic:              {name: "automatic", templates: []string{"YYYY-MM-DD HH:mm:SS.ss"}, precision: PrecisionHSecond},
	FormatYear:                   {name: "year", templates: []string{"YYYY"}, precision: PrecisionYear},
	FormatYearMonth:              {name: "year-month", templates: []string{"YYYY-MM"}, precision: PrecisionMonth},
	FormatDate:                   {name: "date", templates: []string{"YYYY-MM-DD"}, precision: PrecisionDay},
	FormatDateHour:               {name: "date-hour", templates: []string{"YYYY-MM-DD HH"}, precision: PrecisionHour},
	FormatDateMinute:             {name: "date-minute", templates: []string{"YYYY-MM-DD HH:mm"}, precision: PrecisionMinute},
	FormatDateSecond:             {name: "date-second", templates: []string{"YYYY-MM-DD HH:mm:SS"}, precision: PrecisionSecond},
	FormatDateHSecond:            {name: "date-hsecond", templates: []string{"YYYY-MM-DD HH:mm:SS.ss"}, precision: PrecisionHSecond},
	FormatCompactDate:            {name: "compact-date", templates: []string{"YYYYMMDD"}, precision: PrecisionDay},
	FormatCompactMinute:          {name: "compact-minute", templates: []string{"YYYYMMDDHHmm"}, precision: PrecisionMinute},
	FormatCompactDateTime:        {name: "compact-datetime", templates: []string{"YYYYMMDDHHmmSS"}, precision: PrecisionSecond},
	FormatSlashDate:              {name: "slash-date", templates: []string{"YYYY/MM/DD"}, precision: PrecisionDay},
	FormatSlashDateSecond:        {name: "slash-date-second", templates: []string{"YYYY/MM/DD HH:mm:SS"}, precision: PrecisionSecond},
	FormatMonthDay:               {name: "month-day", templates: usVariants("MM/DD"), precision: PrecisionDay},
	FormatMonthYear:              {name: "month-year", templates: []string{"MM/YYYY", "M/YYYY"}, precision: PrecisionMonth},
	FormatUSDate:                 {name: "us-date", templates: usVariants("MM/DD/YYYY"), precision: PrecisionDay},
	FormatUSDateMinute:           {name: "us-date-minute", templates: usVariants("MM/DD/YYYY HH:mm"), precision: PrecisionMinute},
	FormatUSDateSecond:           {name: "us-date-second", templates: usVariants("MM/DD/YYYY HH:mm:SS"), precision: PrecisionSecond},
	FormatUSShortDate:            {name: "us-short-date", templates: usVariants("MM/DD/YY"), precision: PrecisionDay},
	FormatDashUSDate:             {name: "dash-us-date", templates: []string{"MM-DD-YYYY"}, precision: PrecisionDay},
	FormatEuroDate:               {name: "euro-date", templates: []string{"DD.MM.YYYY"}, precision: PrecisionDay},
	FormatEuroDateMinute:         {name: "euro-date-minute", templates: []string{"DD.MM.YYYY HH:mm"}, precision: PrecisionMinute},
	FormatHour:                   {name: "hour", templates: []string{"HH"}, precision: PrecisionHour, timeOnly: true},
	FormatHourMinute:             {name: "hour-minute", templates: []string{"HH:mm"}, precision: PrecisionMinute, timeOnly: true},
	FormatTime:                   {name: "time", templates: []string{"HH:mm:SS"}, precision: PrecisionSecond, timeOnly: true},
	FormatTimeHSecond:            {name: "time-hsecond", templates: []string{"HH:mm:SS.ss"}, precision: PrecisionHSecond, timeOnly: true},
	FormatDayMonthNameYear:       {name: "day-monthname-year", templates: []string{"DD-NNN-YYYY"}, precision: PrecisionDay},
	FormatDayMonthNameYearSecond: {name: "day-monthname-year-second", templates: []string{"DD-NNN-YYYY HH:mm:SS"}, precision: PrecisionSecond},
	FormatISO8601:                {name: "iso8601", precision: PrecisionHSecond},
}

var monthAbbrevs = [13]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

/*
Formats returns every registered [Format] other than [FormatNone], in
ascending order.
*/
func Formats() (out []Format) {
	for f := FormatAutomatic; f <= FormatISO8601; f++ {
		out = append(out, f)
	}
	return
}

/*
String returns the stable name of the receiver instance.
*/
func (r Format) String() string {
	if l, ok := layouts[r]; ok {
		return l.name
	}
	return "format(" + itoa(int(r)) + ")"
}

/*
Known returns true if the receiver is a registered format.
*/
func (r Format) Known() bool {
	_, ok := layouts[r]
	return ok
}

/*
Precision returns the finest field carried by the receiver. For
[FormatISO8601] the effective precision depends on the input, and
[PrecisionHSecond] is returned.
*/
func (r Format) Precision() Precision { return layouts[r].precision }

/*
TimeOnly returns true if the receiver carries no date fields.
*/
func (r Format) TimeOnly() bool { return layouts[r].timeOnly }

/*
Variants returns the number of templates registered for the receiver.
*/
func (r Format) Variants() int { return len(layouts[r].templates) }

/*
Template returns the template of the receiver for the given variant
(default [VariantPadded]), or an empty string if there is none.
*/
func (r Format) Template(variant ...int) string {
	l := layouts[r]
	v := 0
	if len(variant) > 0 {
		v = variant[0]
	}
	if v < 0 || v >= len(l.templates) {
		return ""
	}
	return l.templates[v]
}

/*
FormatByName returns the [Format] registered under name. Case is not
significant.
*/
func FormatByName(name string) (Format, error) {
	for f, l := range layouts {
		if streqf(l.name, trimS(name)) {
			return f, nil
		}
	}
	return FormatNone, errorUnknownFormat(name, FormatNone, "no such format name")
}

/*
String returns the [FormatAutomatic] rendering of the receiver
instance: "YYYY-MM-DD HH:mm:SS.ss", followed by a space and the zone
label when one is set and names a zone (see [DateTime.Format]).
*/
func (r *DateTime) String() string {
	return render(layouts[FormatAutomatic].templates[0], r) + zoneSuffix(r.zone)
}

/*
Format returns the receiver rendered in format f, using the optional
template variant (default [VariantPadded]). When the receiver uses
time zones and carries a zone label, non-ISO formats are followed by a
space and the label. Numeric offset labels such as "-07:00" are left
out, since only a trailing token beginning with a letter can be parsed
back; use [DateTime.ISO8601] to keep them.

[FormatNone] renders as an empty string, [FormatAutomatic] as
[DateTime.String] and [FormatISO8601] as [DateTime.ISO8601].
*/
func (r *DateTime) Format(f Format, variant ...int) (string, error) {
	switch f {
	case FormatNone:
		return "", nil
	case FormatAutomatic:
		return r.String(), nil
	case FormatISO8601:
		return r.ISO8601()
	}

	if !f.Known() {
		return "", errorUnknownFormat("", f, "unknown format code")
	}

	tmpl := f.Template(variant...)
	if tmpl == "" {
		return "", errorUnknownFormat("", f, "no template for variant")
	}

	s := render(tmpl, r)
	if r.cfg.UseTimeZone {
		s += zoneSuffix(r.zone)
	}
	return s, nil
}

// zoneSuffix returns " "+label for a named zone, else "".
func zoneSuffix(label string) string {
	if label == "" || !isLetter(label[0]) {
		return ""
	}
	return " " + label
}

// runLen returns the length of the run of tmpl[i] starting at i.
func runLen(tmpl string, i int) int {
	j := i
	for j < len(tmpl) && tmpl[j] == tmpl[i] {
		j++
	}
	return j - i
}

func isFieldLetter(c byte) bool { return stridxb("YMNDHmSs", c) >= 0 }

func render(tmpl string, r *DateTime) string {
	b := newStrBuilder()
	for i := 0; i < len(tmpl); {
		c := tmpl[i]
		w := runLen(tmpl, i)
		switch c {
		case 'Y':
			if w == 2 {
				_, yy := floorDiv(r.year, 100)
				pad(&b, yy, 2)
			} else {
				pad(&b, r.year, w)
			}
		case 'M':
			pad(&b, r.month, w)
		case 'N':
			b.WriteString(monthAbbrev(r.month))
		case 'D':
			pad(&b, r.day, w)
		case 'H':
			pad(&b, r.hour, w)
		case 'm':
			pad(&b, r.minute, w)
		case 'S':
			pad(&b, r.second, w)
		case 's':
			pad(&b, r.hsec, w)
		default:
			b.WriteString(tmpl[i : i+w])
		}
		i += w
	}
	return b.String()
}

func monthAbbrev(m int) string {
	if m < 1 || m > 12 {
		return "???"
	}
	return monthAbbrevs[m]
}

/*
ISO8601 returns the extended ISO 8601 rendering of the receiver,
emitting only the fields at or coarser than its precision, e.g.:

	2020             year precision
	2020-01-15T10:30 minute precision
	T10:30:00.25Z    time-only, hundredth precision, zone "Z"

A zone label is appended only if it is "Z" or begins with '+' or '-'.
Any other non-empty label cannot be expressed and yields an error
wrapping [ErrRendering].
*/
func (r *DateTime) ISO8601() (string, error) {
	if r.zone != "" && !isOffsetStyle(r.zone) {
		return "", errorRendering(FormatISO8601, "zone ", r.zone, " is not an ISO 8601 designator")
	}

	p := r.cfg.Precision
	b := newStrBuilder()

	if !r.cfg.TimeOnly {
		pad(&b, r.year, 4)
		if p.Includes(PrecisionMonth) {
			b.WriteByte('-')
			pad(&b, r.month, 2)
		}
		if p.Includes(PrecisionDay) {
			b.WriteByte('-')
			pad(&b, r.day, 2)
		}
	}

	if p.Includes(PrecisionHour) {
		b.WriteByte('T')
		pad(&b, r.hour, 2)
		if p.Includes(PrecisionMinute) {
			b.WriteByte(':')
			pad(&b, r.minute, 2)
		}
		if p.Includes(PrecisionSecond) {
			b.WriteByte(':')
			pad(&b, r.second, 2)
		}
		if p.Includes(PrecisionHSecond) {
			b.WriteByte('.')
			pad(&b, r.hsec, 2)
		}
		b.WriteString(r.zone)
	}

	return b.String(), nil
}

func isOffsetStyle(label string) bool {
	return label == "Z" || hasPfx(label, "+") || hasPfx(label, "-")
}
