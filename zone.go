package dtplus

/*
zone.go implements time zone labelling and shifting. Wall-clock fields
are adjusted when a value migrates from one zone to another so that the
instant it denotes is preserved.
*/

/*
SetTimeZone relabels the receiver without adjusting any field. A
non-empty label enables time zone use.
*/
func (r *DateTime) SetTimeZone(label string) {
	r.zone = trimS(label)
	if r.zone != "" {
		r.cfg.UseTimeZone = true
	}
}

/*
ShiftTimeZone moves the receiver into the zone named by label,
adjusting the wall-clock fields by the difference between the old and
new offsets, so that the instant denoted is unchanged. Named
abbreviations are resolved with res, which may be nil if only "Z" and
"+HH:MM"/"-HH:MM" labels are in play.

Shifting is a no-op when label equals the current label (ignoring
case). An empty label clears the zone without adjusting any field, and
a receiver without a zone is simply labelled. Resolution failures wrap
[ErrTimeZoneUnrecognized] and leave the receiver unchanged.
*/
func (r *DateTime) ShiftTimeZone(label string, res Resolver) error {
	label = trimS(label)

	switch {
	case streqf(label, r.zone):
		return nil
	case label == "":
		r.zone = ""
		return nil
	case r.zone == "":
		if _, err := offsetOf(label, res); err != nil {
			return err
		}
		r.SetTimeZone(label)
		return nil
	}

	from, err := offsetOf(r.zone, res)
	if err != nil {
		return err
	}
	to, err := offsetOf(label, res)
	if err != nil {
		return err
	}

	if delta := to - from; delta != 0 {
		r.addMinutes(delta / 60)
		r.addSeconds(delta % 60)
		r.mutated()
	}
	r.SetTimeZone(label)

	return nil
}

// offsetOf returns the offset of label in seconds east of UTC.
func offsetOf(label string, res Resolver) (int, error) {
	if isOffsetStyle(label) {
		secs, err := parseOffsetLabel(label)
		if err != nil {
			return 0, errorZone(label, err)
		}
		return secs, nil
	}
	if res == nil {
		return 0, errorZone(label, mkerr("no resolver available for named zone"))
	}
	secs, err := res.Offset(label)
	if err != nil {
		if errorsIs(err, ErrTimeZoneUnrecognized) {
			return 0, err
		}
		return 0, errorZone(label, err)
	}
	return secs, nil
}

func parseOffsetLabel(label string) (int, error) {
	norm, err := normalizeOffset(label)
	if err != nil {
		return 0, err
	}
	if norm == "Z" {
		return 0, nil
	}
	hh, _ := digits(norm[1:3])
	mm, _ := digits(norm[4:6])
	secs := (hh*60 + mm) * 60
	if norm[0] == '-' {
		secs = -secs
	}
	return secs, nil
}

// offsetLabel renders seconds east of UTC as "+HH:MM"; whole seconds
// of the offset are dropped.
func offsetLabel(secs int) string {
	b := newStrBuilder()
	if secs < 0 {
		b.WriteByte('-')
		secs = -secs
	} else {
		b.WriteByte('+')
	}
	pad(&b, secs/3600, 2)
	b.WriteByte(':')
	pad(&b, (secs%3600)/60, 2)
	return b.String()
}
