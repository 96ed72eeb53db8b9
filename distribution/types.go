package distribution

import "github.com/cockroachdb/errors"

// DefaultBucketCount is the number of buckets used when no option is given.
const DefaultBucketCount = 10

// MaxCountingValue is the largest value counting sort accepts; the count
// table has one slot per value up to it.
const MaxCountingValue = 999

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("distribution: invalid option supplied")

// Option configures bucket sort.
type Option func(*Options)

// Options holds the bucket sort tunables.
type Options struct {
	// BucketCount is the number of equal-width buckets over [0, 1].
	BucketCount int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with DefaultBucketCount buckets.
func DefaultOptions() Options {
	return Options{BucketCount: DefaultBucketCount}
}

// WithBucketCount sets the number of buckets; k must be positive.
func WithBucketCount(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "bucket count must be positive (%d)", k)

			return
		}
		o.BucketCount = k
	}
}
