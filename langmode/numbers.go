package langmode

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"fifi-core/numeric"
)

// errUnreachableAtom guards atomNode.toExpr's switch, which participle's
// grammar guarantees always has exactly one non-nil branch.
var errUnreachableAtom = errors.New("langmode: atom with no recognized literal")

func parseBigInt(s string) (numeric.Number, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return numeric.Number{}, errors.Errorf("langmode: invalid integer literal %q", s)
	}
	return numeric.NewBigInt(i), nil
}

func parseFloat(s string) (numeric.Number, error) {
	f, ok := new(big.Float).SetPrec(numeric.FloatPrec).SetString(s)
	if !ok {
		return numeric.Number{}, errors.Errorf("langmode: invalid float literal %q", s)
	}
	return numeric.NewFloat(f), nil
}

// parseRatio reads the "p:q" ratio literal (spec.md §6).
func parseRatio(s string) (numeric.Number, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return numeric.Number{}, errors.Errorf("langmode: invalid ratio literal %q", s)
	}
	num, ok1 := new(big.Int).SetString(parts[0], 10)
	den, ok2 := new(big.Int).SetString(parts[1], 10)
	if !ok1 || !ok2 || den.Sign() == 0 {
		return numeric.Number{}, errors.Errorf("langmode: invalid ratio literal %q", s)
	}
	return numeric.NewRational(new(big.Rat).SetFrac(num, den)).Shrink(), nil
}
