// Package random produces lazy streams of elements drawn uniformly at random
// from a finite domain.
package random

import (
	"iter"
	"slices"

	"github.com/NethermindEth/idioms/utils"
	"github.com/pkg/errors"
)

var ErrInvalidInput = errors.New("invalid input")

type options[T comparable] struct {
	source      Source
	log         utils.SimpleLogger
	sentinel    T
	hasSentinel bool
}

type Option[T comparable] func(*options[T])

// WithSentinel ends the stream as soon as sentinel is drawn. The sentinel
// itself is not yielded.
func WithSentinel[T comparable](sentinel T) Option[T] {
	return func(o *options[T]) {
		o.sentinel = sentinel
		o.hasSentinel = true
	}
}

// WithSource replaces the process-wide random generator. A nil source is ignored.
func WithSource[T comparable](source Source) Option[T] {
	return func(o *options[T]) {
		if source != nil {
			o.source = source
		}
	}
}

func WithLogger[T comparable](log utils.SimpleLogger) Option[T] {
	return func(o *options[T]) {
		if log != nil {
			o.log = log
		}
	}
}

// Stream returns a sequence of elements drawn independently and uniformly from
// domain, one draw per pulled element. Without a sentinel the sequence is
// infinite and the caller is responsible for bounding it, e.g. with utils.Take.
//
// domain is copied. Later changes to it do not affect the stream.
func Stream[T comparable](domain []T, opts ...Option[T]) (iter.Seq[T], error) {
	if len(domain) == 0 {
		return nil, errors.WithMessage(ErrInvalidInput, "cannot draw from an empty domain")
	}

	o := options[T]{
		source: globalSource{},
		log:    utils.NewNopZapLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	domain = slices.Clone(domain)
	stream := utils.Repeatedly(func() T {
		return domain[o.source.IntN(len(domain))]
	})
	if !o.hasSentinel {
		return stream, nil
	}

	return func(yield func(T) bool) {
		drawn := 0
		for v := range utils.TakeWhile(stream, func(v T) bool {
			drawn++
			return v != o.sentinel
		}) {
			if !yield(v) {
				return
			}
		}
		o.log.Debugw("Random stream reached sentinel", "sentinel", o.sentinel, "draws", drawn)
	}, nil
}

// StreamSeq materialises seq and draws from its elements as Stream does.
func StreamSeq[T comparable](seq iter.Seq[T], opts ...Option[T]) (iter.Seq[T], error) {
	return Stream(slices.Collect(seq), opts...)
}
