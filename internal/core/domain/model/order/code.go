package order

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sync/atomic"

	"kitchen/internal/pkg/errs"
)

// Codes are zero-padded to six digits and widen past that once the counter
// outgrows them.
var codePattern = regexp.MustCompile(`^O\d{6,19}$`)

// Code is the short human-facing order number shown on kitchen displays, e.g. "O042917".
type Code string

func ParseCode(s string) (Code, error) {
	if !codePattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause("order code", fmt.Errorf("%q does not match O + at least 6 digits", s))
	}
	return Code(s), nil
}

// CodeFromNumber formats the n-th order number. n must be positive.
func CodeFromNumber(n int64) (Code, error) {
	if n <= 0 {
		return "", errs.NewValueIsOutOfRangeError("order number", n, 1, int64(math.MaxInt64))
	}
	return Code(fmt.Sprintf("O%06d", n)), nil
}

func (c Code) Validate() error {
	_, err := ParseCode(string(c))
	return err
}

func (c Code) String() string {
	return string(c)
}

// CodeGenerator hands out order codes from a monotonic counter. Storage still
// enforces uniqueness with an index.
type CodeGenerator interface {
	Next(ctx context.Context) (Code, error)
}

// CounterCodeGenerator counts in process memory. It suits tests and single
// process tools; the service uses a database sequence.
type CounterCodeGenerator struct {
	last atomic.Int64
}

// NewCounterCodeGenerator continues after last, so the first code is last+1.
func NewCounterCodeGenerator(last int64) *CounterCodeGenerator {
	g := &CounterCodeGenerator{}
	g.last.Store(last)
	return g
}

func (g *CounterCodeGenerator) Next(context.Context) (Code, error) {
	return CodeFromNumber(g.last.Add(1))
}
