package dtplus

/*
iso.go implements the ISO 8601 subset: calendar dates of reduced
precision (YYYY, YYYY-MM, YYYY-MM-DD and their basic forms), times of
reduced precision with an optional decimal fraction of the second, and
a "Z" or numeric offset designator. Week dates and ordinal dates are
not supported. Fractions are truncated to hundredths.
*/

// parseISO parses body, the input with any trailing zone abbreviation
// (named) already split off. A named zone may not accompany a numeric
// designator.
func (r *DateTime) parseISO(s, body, named string) error {
	scratch := newScratch()

	var (
		datePart string = body
		timePart string
		hasT     bool
	)
	if i := stridxb(body, 'T'); i >= 0 {
		datePart, timePart, hasT = body[:i], body[i+1:], true
	}

	var (
		p        Precision
		timeOnly bool
		zone     string
		err      error
	)

	if datePart == "" {
		if !hasT {
			return errorUnknownFormat(s, FormatISO8601, "empty date")
		}
		timeOnly = true
	} else if p, err = scratch.isoDate(datePart); err != nil {
		return errorUnknownFormat(s, FormatISO8601, err)
	}

	if hasT {
		if !timeOnly && p != PrecisionDay {
			return errorUnknownFormat(s, FormatISO8601, "time requires a complete date")
		}
		if p, zone, err = scratch.isoTime(timePart); err != nil {
			return errorUnknownFormat(s, FormatISO8601, err)
		}
	}

	if named != "" {
		if zone != "" || !hasT {
			return errorUnknownFormat(s, FormatISO8601, "unexpected zone ", named)
		}
		zone = named
	}

	if err = scratch.validate(p, timeOnly); err != nil {
		return withInput(err, s)
	}

	r.commit(scratch, p, timeOnly, zone)
	return nil
}

// isoDate parses the extended (with '-') or basic form of a calendar
// date of reduced precision.
func (r *DateTime) isoDate(s string) (p Precision, err error) {
	var parts []string
	if cntns(s, "-") {
		parts = split(s, "-")
	} else {
		switch len(s) {
		case 4:
			parts = []string{s}
		case 6:
			parts = []string{s[:4], s[4:]}
		case 8:
			parts = []string{s[:4], s[4:6], s[6:]}
		default:
			return PrecisionUnset, mkerrf("bad date length ", len(s))
		}
	}

	widths := []int{4, 2, 2}
	if len(parts) > len(widths) {
		return PrecisionUnset, mkerr("too many date components")
	}

	for i, part := range parts {
		v, ok := digits(part)
		if !ok || len(part) != widths[i] {
			return PrecisionUnset, mkerrf("bad date component ", part)
		}
		switch i {
		case 0:
			r.year, p = v, PrecisionYear
		case 1:
			r.month, p = v, PrecisionMonth
		case 2:
			r.day, p = v, PrecisionDay
		}
	}

	return
}

// isoTime parses a time of reduced precision with optional fraction
// and zone designator.
func (r *DateTime) isoTime(s string) (p Precision, zone string, err error) {
	if zi := stridxany(s, "Z+-"); zi >= 0 {
		if zone, err = normalizeOffset(s[zi:]); err != nil {
			return
		}
		s = s[:zi]
	}

	var frac string
	hasFrac := false
	if fi := stridxany(s, ".,"); fi >= 0 {
		s, frac, hasFrac = s[:fi], s[fi+1:], true
	}

	var parts []string
	if cntns(s, ":") {
		parts = split(s, ":")
	} else {
		for i := 0; i+2 <= len(s); i += 2 {
			parts = append(parts, s[i:i+2])
		}
		if len(s)%2 != 0 {
			err = mkerrf("bad time length ", len(s))
			return
		}
	}

	if len(parts) == 0 || len(parts) > 3 {
		err = mkerr("bad time component count")
		return
	}

	for i, part := range parts {
		v, ok := digits(part)
		if !ok || len(part) != 2 {
			err = mkerrf("bad time component ", part)
			return
		}
		switch i {
		case 0:
			r.hour, p = v, PrecisionHour
		case 1:
			r.minute, p = v, PrecisionMinute
		case 2:
			r.second, p = v, PrecisionSecond
		}
	}

	if hasFrac {
		if p != PrecisionSecond || !allDigits(frac) {
			err = mkerrf("bad fraction ", frac)
			return
		}
		if len(frac) == 1 {
			frac += "0"
		}
		r.hsec, _ = digits(frac[:2])
		p = PrecisionHSecond
	}

	return
}

// normalizeOffset accepts "Z", "±HH", "±HHMM" and "±HH:MM" and returns
// "Z" or the "±HH:MM" form.
func normalizeOffset(s string) (string, error) {
	if s == "Z" {
		return s, nil
	}
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return "", mkerrf("bad zone designator ", s)
	}

	body := replaceAll(s[1:], ":", "")
	if len(body) == 2 {
		body += "00"
	}
	if len(body) != 4 {
		return "", mkerrf("bad zone designator ", s)
	}
	hh, ok1 := digits(body[:2])
	mm, ok2 := digits(body[2:])
	if !ok1 || !ok2 || hh > 23 || mm > 59 {
		return "", mkerrf("bad zone designator ", s)
	}

	return s[:1] + body[:2] + ":" + body[2:], nil
}
