// SPDX-License-Identifier: MIT

package printer

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelimiter opens and closes every printed matrix.
	DefaultDelimiter = "--------"

	// DefaultPrecision is the number of significant digits per value.
	DefaultPrecision = 6

	// MaxPrecision is the largest precision accepted by WithPrecision;
	// 17 significant digits round-trip any float64.
	MaxPrecision = 17
)

// ---------- Internal panic messages ----------

const (
	panicDelimiterInvalid = "printer: WithDelimiter: delimiter must be non-empty and single-line"
	panicPrecisionInvalid = "printer: WithPrecision: precision must be in [1, 17]"
	panicLoggerNil        = "printer: WithLogger: logger must not be nil"
)

// Option mutates printer options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	delimiter string
	precision int
	logger    logrus.FieldLogger
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		delimiter: DefaultDelimiter,
		precision: DefaultPrecision,
		logger:    logrus.StandardLogger(),
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithDelimiter replaces the delimiter line printed before and after the rows.
// Panics if delim is empty or contains a line break.
func WithDelimiter(delim string) Option {
	if delim == "" || strings.ContainsAny(delim, "\r\n") {
		panic(panicDelimiterInvalid)
	}

	return func(o *Options) { o.delimiter = delim }
}

// WithPrecision sets the number of significant digits printed per value.
// Panics unless 1 ≤ p ≤ MaxPrecision.
func WithPrecision(p int) Option {
	if p < 1 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithLogger routes the printer's debug entries to l instead of the logrus
// standard logger. Panics if l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}
