package order

import (
	"crypto/rand"
	"math/big"

	"payconnect/internal/pkg/errs"
)

// Order references are 15-digit numeric tokens with a fixed prefix,
// giving a collision space of 9x10^14 per generation.
const (
	referencePrefix = "T"
	referenceMin    = 100_000_000_000_000
	referenceSpan   = 900_000_000_000_000
)

// NewReference generates a fresh order reference for callers that did
// not supply their own.
func NewReference() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(referenceSpan))
	if err != nil {
		return "", errs.Wrap(err, "failed to generate order reference")
	}
	return referencePrefix + n.Add(n, big.NewInt(referenceMin)).String(), nil
}
