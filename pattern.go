package glint

import (
	"fmt"
	"regexp"
)

// Pattern is a regular expression accepted in one of two forms: raw source
// text, compiled lazily when segmentation begins, or an already-compiled
// *regexp.Regexp supplied by the caller. Both normalize to the same internal
// matcher before any text is scanned, so repeated calls with a precompiled
// pattern never recompile.
type Pattern struct {
	raw string
	re  *regexp.Regexp
}

// NewPattern wraps raw regular expression source. Compilation is deferred to
// the first segmentation call; a syntax error surfaces there as an
// *InvalidPatternError.
func NewPattern(expr string) Pattern {
	return Pattern{raw: expr}
}

// Precompiled wraps an already-compiled regular expression. Segmentation
// calls reuse it directly.
func Precompiled(re *regexp.Regexp) Pattern {
	return Pattern{re: re}
}

// compile normalizes the pattern to its single internal compiled form.
func (p Pattern) compile() (*matcher, error) {
	if p.re != nil {
		return &matcher{re: p.re}, nil
	}
	re, err := regexp.Compile(p.raw)
	if err != nil {
		return nil, &InvalidPatternError{Expr: p.raw, Err: err}
	}
	return &matcher{re: re}, nil
}

// matcher is the single internal compiled-pattern representation.
type matcher struct {
	re *regexp.Regexp
}

// InvalidPatternError reports a pattern whose source text could not be
// compiled. It is the only error kind the package produces: pattern text is
// often typed live by an end user, so an unparsable in-progress expression
// is an expected condition, returned rather than panicked.
type InvalidPatternError struct {
	Expr string
	Err  error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Expr, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}
