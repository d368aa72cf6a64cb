package dtplus

/*
precision.go contains the Precision enumeration and the legacy packed
Flag encoding, in which a small precision code shares one integer
with a set of larger-valued modifier bits.
*/

/*
Precision identifies the finest field of a [DateTime] which remains
significant for comparison, formatting and truncation. Values are
ordered coarse to fine: a numerically smaller Precision is coarser.

The zero value, [PrecisionUnset], is only meaningful inside a [Config]
where it means "leave the current precision alone".
*/
type Precision uint8

const (
	PrecisionUnset Precision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDay
	PrecisionHour
	PrecisionMinute
	PrecisionSecond
	PrecisionHSecond
)

var precisionNames = map[Precision]string{
	PrecisionUnset:   "unset",
	PrecisionYear:    "year",
	PrecisionMonth:   "month",
	PrecisionDay:     "day",
	PrecisionHour:    "hour",
	PrecisionMinute:  "minute",
	PrecisionSecond:  "second",
	PrecisionHSecond: "hsecond",
}

/*
String returns the lowercase name of the receiver instance.
*/
func (r Precision) String() string {
	if n, ok := precisionNames[r]; ok {
		return n
	}
	return "precision(" + itoa(int(r)) + ")"
}

/*
Valid returns true if the receiver is one of YEAR through HSECOND.
*/
func (r Precision) Valid() bool { return PrecisionYear <= r && r <= PrecisionHSecond }

/*
Coarser returns true if the receiver is strictly coarser than o,
e.g.: PrecisionYear.Coarser(PrecisionDay) is true.
*/
func (r Precision) Coarser(o Precision) bool { return r < o }

/*
Finer returns true if the receiver is strictly finer than o.
*/
func (r Precision) Finer(o Precision) bool { return r > o }

/*
Includes returns true if field precision p is at or coarser than the
receiver, which is to say that p is significant under the receiver.
*/
func (r Precision) Includes(p Precision) bool { return p <= r }

/*
ParsePrecision returns the [Precision] named by s. Case is not
significant; "hundredth" and "centisecond" are accepted as aliases
of "hsecond".
*/
func ParsePrecision(s string) (Precision, error) {
	s = lc(trimS(s))
	switch s {
	case "hundredth", "centisecond", "hsec":
		s = "hsecond"
	case "sec":
		s = "second"
	case "min":
		s = "minute"
	}
	for p, n := range precisionNames {
		if n == s && p.Valid() {
			return p, nil
		}
	}
	return PrecisionUnset, configErrorf("unknown precision ", s)
}

/*
Flag is the legacy packed configuration value. The low bits carry a
bare precision code (always less than [flagPrecisionLimit]); the
modifier bits are all 0x1000 or greater. Use [Decompose] to obtain
the equivalent [Config].
*/
type Flag uint32

const (
	FlagStrict      Flag = 0x1000
	FlagFast        Flag = 0x2000
	FlagZero        Flag = 0x4000
	FlagCurrent     Flag = 0x8000
	FlagTimeOnly    Flag = 0x10000
	FlagUseTimeZone Flag = 0x20000
)

const (
	flagPrecisionLimit = 100
	flagModifierMask   = FlagStrict | FlagFast | FlagZero | FlagCurrent |
		FlagTimeOnly | FlagUseTimeZone
)

/*
Precision returns the bare precision code carried by the receiver,
with all modifier bits masked out. Codes which do not name a valid
precision yield [PrecisionUnset].
*/
func (r Flag) Precision() Precision {
	code := r &^ flagModifierMask
	if code >= flagPrecisionLimit {
		return PrecisionUnset
	}
	if p := Precision(code); p.Valid() {
		return p
	}
	return PrecisionUnset
}

/*
Has returns true if all bits of m are set in the receiver.
*/
func (r Flag) Has(m Flag) bool { return r&m == m }

/*
Decompose returns the [Config] equivalent of the legacy packed flag.
When both strict and fast (or zero and current) bits are present the
first of each pair wins.
*/
func Decompose(flag Flag) (c Config) {
	c.Precision = flag.Precision()

	switch {
	case flag.Has(FlagStrict):
		c.Behavior = BehaviorStrict
	case flag.Has(FlagFast):
		c.Behavior = BehaviorFast
	}

	switch {
	case flag.Has(FlagZero):
		c.Init = InitZero
	case flag.Has(FlagCurrent):
		c.Init = InitCurrent
	}

	c.TimeOnly = flag.Has(FlagTimeOnly)
	c.UseTimeZone = flag.Has(FlagUseTimeZone)

	return
}
