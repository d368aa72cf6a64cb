package dtplus

/*
config.go contains the Config type, which replaces the legacy packed
Flag with explicit fields, alongside its keyword-string parser.
*/

/*
Behavior selects between strict validation and fast iteration. The
zero value, [BehaviorUnset], defers to whatever behavior is already
in effect.
*/
type Behavior uint8

const (
	BehaviorUnset Behavior = iota
	BehaviorStrict
	BehaviorFast
)

/*
InitMode selects how a newly constructed [DateTime] is populated.
*/
type InitMode uint8

const (
	InitUnset InitMode = iota
	InitZero
	InitCurrent
)

/*
Config implements a simple encapsulator for the precision and behavior
settings of a [DateTime]. Instances may be assembled manually, parsed
from a keyword string via [NewConfig], or decoded from a legacy [Flag]
via [Decompose].

Unset fields (the zero values of Precision, Behavior and Init) leave
the corresponding setting of the target untouched when merged.
*/
type Config struct {
	Precision   Precision // finest significant field
	Behavior    Behavior  // strict validation or fast iteration
	Init        InitMode  // zero or current-time construction
	TimeOnly    bool      // date fields are ignored by comparison and ISO output
	UseTimeZone bool      // zone label is rendered by non-ISO formats
}

/*
DefaultConfig returns the configuration applied to every new [DateTime]
before any caller-supplied [Config] is merged: hundredth-second
precision, strict behavior and zero initialization.
*/
func DefaultConfig() Config {
	return Config{
		Precision: PrecisionHSecond,
		Behavior:  BehaviorStrict,
		Init:      InitZero,
	}
}

/*
Strict returns true unless the receiver explicitly selects fast
behavior.
*/
func (r Config) Strict() bool { return r.Behavior != BehaviorFast }

/*
Merge returns the result of applying next on top of the receiver.

When cumulative is true, the TimeOnly and UseTimeZone modifiers already
present in the receiver are preserved (OR'd with those of next). When
cumulative is false, those modifiers are first reset to their defaults
so that only the modifiers present in next survive.

Precision, Behavior and Init are replaced only when next sets them.
*/
func (r Config) Merge(next Config, cumulative bool) Config {
	out := r
	if !cumulative {
		out.TimeOnly = false
		out.UseTimeZone = false
	}

	if next.Precision.Valid() {
		out.Precision = next.Precision
	}
	if next.Behavior != BehaviorUnset {
		out.Behavior = next.Behavior
	}
	if next.Init != InitUnset {
		out.Init = next.Init
	}
	out.TimeOnly = out.TimeOnly || next.TimeOnly
	out.UseTimeZone = out.UseTimeZone || next.UseTimeZone

	return out
}

/*
Flag returns the legacy packed encoding of the receiver.
*/
func (r Config) Flag() (f Flag) {
	f = Flag(r.Precision)
	switch r.Behavior {
	case BehaviorStrict:
		f |= FlagStrict
	case BehaviorFast:
		f |= FlagFast
	}
	switch r.Init {
	case InitZero:
		f |= FlagZero
	case InitCurrent:
		f |= FlagCurrent
	}
	if r.TimeOnly {
		f |= FlagTimeOnly
	}
	if r.UseTimeZone {
		f |= FlagUseTimeZone
	}
	return
}

// add appends val to dst if cond is true.
func addStringConfigValue(dst *[]string, cond bool, val string) {
	if cond {
		*dst = append(*dst, val)
	}
}

/*
String returns the keyword string representation of the receiver
instance, suitable for use with [NewConfig].
*/
func (r Config) String() string {
	var parts []string

	addStringConfigValue(&parts, r.Precision.Valid(), "precision:"+r.Precision.String())
	addStringConfigValue(&parts, r.Behavior == BehaviorStrict, "strict")
	addStringConfigValue(&parts, r.Behavior == BehaviorFast, "fast")
	addStringConfigValue(&parts, r.Init == InitZero, "zero")
	addStringConfigValue(&parts, r.Init == InitCurrent, "current")
	addStringConfigValue(&parts, r.TimeOnly, "timeonly")
	addStringConfigValue(&parts, r.UseTimeZone, "timezone")

	return join(parts, ",")
}

/*
NewConfig returns a new instance of [Config] alongside an error
following an attempt to parse the input keyword string, e.g.:

	precision:day,strict
	precision:minute,fast,timezone,current

Keywords are comma-separated and case is not significant. Recognized
keywords are "strict", "fast", "zero", "current", "timeonly" (alias
"time-only"), "timezone" (alias "usetimezone") and "precision:<name>"
where name is accepted by [ParsePrecision].
*/
func NewConfig(s string) (Config, error) {
	var (
		c   Config
		err error
	)

	if s = trim(trimS(lc(s)), `"`); len(s) == 0 {
		err = errorEmptyConfig
	} else {
		c, err = parseConfig(s)
	}

	return c, err
}

func parseConfig(s string) (c Config, err error) {
	var unidentified []string

	for _, token := range split(s, ",") {
		token = trimS(token)
		switch {
		case token == "":
			continue
		case hasPfx(token, "precision:"):
			var p Precision
			if p, err = ParsePrecision(trimPfx(token, "precision:")); err != nil {
				return
			}
			c.Precision = p
		case strInSlice(token, []string{"strict", "fast"}):
			if err = c.setBehavior(token); err != nil {
				return
			}
		case strInSlice(token, []string{"zero", "current"}):
			if err = c.setInit(token); err != nil {
				return
			}
		case strInSlice(token, []string{"timeonly", "time-only"}):
			c.TimeOnly = true
		case strInSlice(token, []string{"timezone", "usetimezone", "tz"}):
			c.UseTimeZone = true
		default:
			unidentified = append(unidentified, token)
		}
	}

	if len(unidentified) > 0 {
		err = configErrorf("unidentified or superfluous keywords found: ", join(unidentified, ` `))
	}

	return
}

func (r *Config) setBehavior(name string) (err error) {
	b := BehaviorStrict
	if name == "fast" {
		b = BehaviorFast
	}
	if r.Behavior != BehaviorUnset && r.Behavior != b {
		err = errorStrictAndFast
	} else {
		r.Behavior = b
	}
	return
}

func (r *Config) setInit(name string) (err error) {
	m := InitZero
	if name == "current" {
		m = InitCurrent
	}
	if r.Init != InitUnset && r.Init != m {
		err = errorZeroAndCurrent
	} else {
		r.Init = m
	}
	return
}
