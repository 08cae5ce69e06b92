// Package epoch converts Unix epochs and batch ids to calendar dates.
//
// A batch is a fixed BatchTimeSeconds window counted from epoch 0. The indexer uses
// MaxEpoch and MaxBatchID for "never"; a zero epoch means the event did not happen.
package epoch

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rickgao/dfusion-cli/internal/numeric"
)

const (
	// BatchTimeSeconds is the length of one batch.
	BatchTimeSeconds = 300

	// MaxEpoch is 9999-12-31T23:59:59Z, the largest representable date.
	MaxEpoch int64 = 253402300799

	// MaxBatchID marks an order that never expires.
	MaxBatchID int64 = 844674335

	// DateTimeLayout renders as %d/%m/%y %H:%M:%S.
	DateTimeLayout = "02/01/06 15:04:05"

	// DateLayout renders as %d/%m/%y.
	DateLayout = "02/01/06"

	// DefaultNeverLabel is shown for the "never" sentinel date.
	DefaultNeverLabel = "Never"

	// DefaultNeverExpiresLabel is shown for a batch id at or past MaxBatchID.
	DefaultNeverExpiresLabel = "Never expires"
)

// Kind tells whether a Date holds a time.
type Kind int

const (
	// Absent means no event was recorded.
	Absent Kind = iota
	// Max is the "never" sentinel. It is not a calendar date.
	Max
	// At holds a UTC time.
	At
)

// Date is an optional point in time with a "never" sentinel.
type Date struct {
	kind Kind
	t    time.Time
}

// Time builds a Date for t in UTC.
func Time(t time.Time) Date {
	return Date{kind: At, t: t.UTC()}
}

// Never returns the sentinel Date.
func Never() Date {
	return Date{kind: Max}
}

// Kind returns the state of the date.
func (d Date) Kind() Kind { return d.kind }

// IsAbsent reports whether no date was recorded.
func (d Date) IsAbsent() bool { return d.kind == Absent }

// IsMax reports whether d is the "never" sentinel.
func (d Date) IsMax() bool { return d.kind == Max }

// Time returns the UTC time and true when d holds a real date.
func (d Date) Time() (time.Time, bool) {
	return d.t, d.kind == At
}

// Equal reports whether both dates are in the same state and instant.
func (d Date) Equal(other Date) bool {
	return d.kind == other.kind && d.t.Equal(other.t)
}

// FromEpoch converts seconds since the Unix epoch.
func FromEpoch(epoch int64) Date {
	switch {
	case epoch >= MaxEpoch:
		return Never()
	case epoch == 0:
		return Date{}
	default:
		return Time(time.Unix(epoch, 0))
	}
}

// FromBatchID converts a batch id to the start of its batch. Ids whose start would
// pass MaxEpoch are the sentinel.
func FromBatchID(batchID int64) Date {
	if batchID > MaxEpoch/BatchTimeSeconds {
		return Never()
	}
	return FromEpoch(batchID * BatchTimeSeconds)
}

// ParseEpoch parses an epoch field. An empty field is Absent and negative epochs
// are rejected.
func ParseEpoch(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Date{}, fmt.Errorf("parse epoch %q: %w", s, err)
	}
	if n < 0 {
		return Date{}, fmt.Errorf("parse epoch %q: must be >= 0", s)
	}
	return FromEpoch(n), nil
}

// Option configures date formatting.
type Option func(*options)

type options struct {
	neverLabel string
	grouping   bool
}

// WithNeverLabel sets the text shown for the "never" sentinel.
func WithNeverLabel(label string) Option {
	return func(o *options) {
		o.neverLabel = label
	}
}

// WithGrouping toggles thousands separators in batch ids (default on).
func WithGrouping(enabled bool) Option {
	return func(o *options) {
		o.grouping = enabled
	}
}

func newOptions(neverLabel string, opts []Option) options {
	o := options{neverLabel: neverLabel, grouping: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// FormatDateTime renders d as DD/MM/YY HH:MM:SS (UTC).
func FormatDateTime(d Date, opts ...Option) string {
	return format(d, DateTimeLayout, newOptions(DefaultNeverLabel, opts))
}

// FormatDate renders d as DD/MM/YY (UTC).
func FormatDate(d Date, opts ...Option) string {
	return format(d, DateLayout, newOptions(DefaultNeverLabel, opts))
}

// FormatDateTimeISO8601 renders d as RFC 3339 for machine-readable output.
func FormatDateTimeISO8601(d Date, opts ...Option) string {
	return format(d, time.RFC3339, newOptions(DefaultNeverLabel, opts))
}

func format(d Date, layout string, o options) string {
	switch d.kind {
	case Max:
		return o.neverLabel
	case At:
		return d.t.Format(layout)
	default:
		return ""
	}
}

// FormatBatchID renders a batch id as a grouped integer. Zero is "".
func FormatBatchID(batchID int64, opts ...Option) string {
	if batchID == 0 {
		return ""
	}
	if newOptions("", opts).grouping {
		return numeric.FormatInteger(batchID)
	}
	return strconv.FormatInt(batchID, 10)
}

// FormatBatchIDWithDate renders "5,276,104 (27/02/20 19:20:00)". Zero is "" and ids
// at or past MaxBatchID render the never label.
func FormatBatchIDWithDate(batchID int64, opts ...Option) string {
	o := newOptions(DefaultNeverExpiresLabel, opts)
	if batchID == 0 {
		return ""
	}
	if batchID >= MaxBatchID {
		return o.neverLabel
	}

	id := strconv.FormatInt(batchID, 10)
	if o.grouping {
		id = numeric.FormatInteger(batchID)
	}
	return id + " (" + FormatDateTime(FromBatchID(batchID)) + ")"
}
