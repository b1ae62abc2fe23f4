package ntext

import (
	"github.com/pkg/errors"
)

// ErrContractViolation is wrapped by every panic that reports misuse of
// a Builder, Formatter, or Registry: unbalanced sequences, reading the
// text of a builder with open sequences, a nil builder, a nil handler.
// These are bugs in the calling code and are not meant to be recovered.
var ErrContractViolation = errors.New("ntext: contract violation")

func contractViolation(format string, args ...any) {
	panic(errors.Wrapf(ErrContractViolation, format, args...))
}
