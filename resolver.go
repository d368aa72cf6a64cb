package dtplus

/*
resolver.go contains the Resolver collaborator which maps named time
zone abbreviations to UTC offsets, and TableResolver, a table-backed
implementation with an explicit open/close lifecycle.
*/

import (
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

/*
Resolver is qualified through any type which can map a named time zone
abbreviation (e.g. "EST") to its offset east of UTC, in seconds.

Offset-style labels ("Z", "+HH:MM", "-HH:MM") never reach a Resolver;
they are decoded internally.
*/
type Resolver interface {
	Offset(label string) (seconds int, err error)
}

/*
ResolverFunc adapts an ordinary function to the [Resolver] interface.
*/
type ResolverFunc func(string) (int, error)

/*
Offset calls the receiver.
*/
func (r ResolverFunc) Offset(label string) (int, error) { return r(label) }

/*
TableResolver is a [Resolver] backed by an in-memory table of
abbreviations. Lookups are case-insensitive. Instances are safe for
concurrent use, and may be shared between goroutines each holding
their own [DateTime] values.

Once closed, a TableResolver rejects all lookups and loads.
*/
type TableResolver struct {
	mu     sync.RWMutex
	table  map[string]int
	closed bool
}

// defaultZones lists the abbreviations known to NewTableResolver,
// offsets in minutes.
var defaultZones = map[string]int{
	"UTC":  0,
	"UT":   0,
	"GMT":  0,
	"WET":  0,
	"WEST": 60,
	"BST":  60,
	"CET":  60,
	"CEST": 120,
	"EET":  120,
	"EEST": 180,
	"MSK":  180,
	"IST":  330,
	"JST":  540,
	"AEST": 600,
	"AEDT": 660,
	"NZST": 720,
	"NZDT": 780,
	"AST":  -240,
	"ADT":  -180,
	"NST":  -210,
	"NDT":  -150,
	"EST":  -300,
	"EDT":  -240,
	"CST":  -360,
	"CDT":  -300,
	"MST":  -420,
	"MDT":  -360,
	"PST":  -480,
	"PDT":  -420,
	"AKST": -540,
	"AKDT": -480,
	"HST":  -600,
}

/*
NewTableResolver returns an open *[TableResolver] seeded with a table
of common North American, European and Asia-Pacific abbreviations.
Use [TableResolver.Load] or [TableResolver.Set] to add or override
entries.
*/
func NewTableResolver() *TableResolver {
	r := &TableResolver{table: make(map[string]int, len(defaultZones))}
	for k, v := range defaultZones {
		r.table[k] = v * 60
	}
	return r
}

/*
Offset returns the offset of label in seconds east of UTC.
*/
func (r *TableResolver) Offset(label string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return 0, errorZone(label, errorResolverClosed)
	}
	off, ok := r.table[uc(trimS(label))]
	if !ok {
		return 0, errorZone(label)
	}
	return off, nil
}

/*
Set adds or replaces a single abbreviation. The offset is given in
"+HH:MM" or "-HH:MM" form.
*/
func (r *TableResolver) Set(label, offset string) error {
	secs, err := parseOffsetLabel(offset)
	if err != nil {
		return resolverErrorf("zone ", label, ": ", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errorResolverClosed
	}
	r.table[uc(trimS(label))] = secs
	return nil
}

/*
zoneFile is the YAML document read by TableResolver.Load, e.g.:

	zones:
	  EST: "-05:00"
	  IST: "+05:30"
*/
type zoneFile struct {
	Zones map[string]string `yaml:"zones"`
}

/*
Load reads a YAML zone table from rd and merges its entries into the
receiver. Entries are validated before any is applied, so a bad table
leaves the receiver unchanged.
*/
func (r *TableResolver) Load(rd io.Reader) error {
	if rd == nil {
		return errorResolverNilReader
	}

	var doc zoneFile
	if err := yaml.NewDecoder(rd).Decode(&doc); err != nil && err != io.EOF {
		return resolverErrorf("decoding zone table: ", err)
	}

	parsed := make(map[string]int, len(doc.Zones))
	for label, offset := range doc.Zones {
		secs, err := parseOffsetLabel(offset)
		if err != nil {
			return resolverErrorf("zone ", label, ": ", err)
		}
		parsed[uc(trimS(label))] = secs
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return errorResolverClosed
	}
	for k, v := range parsed {
		r.table[k] = v
	}
	return nil
}

/*
Labels returns the number of abbreviations known to the receiver.
*/
func (r *TableResolver) Labels() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.table)
}

/*
Close releases the table. Subsequent lookups fail with an error
wrapping [ErrTimeZoneUnrecognized]. Close is idempotent.
*/
func (r *TableResolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.table = nil
	r.closed = true
	return nil
}
