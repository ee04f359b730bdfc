package prism_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifi-core/prism"
)

// intString narrows a string to an int when it parses, the simplest
// concrete Prism for exercising the two laws spec.md §8 requires of every
// prism in this package.
var intString = prism.New(
	func(s string) (int, bool) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return n, true
	},
	func(n int) string { return strconv.Itoa(n) },
)

func TestNewNarrowWidenRoundTrip(t *testing.T) {
	n, ok, _ := intString.Narrow("42")
	require.True(t, ok)
	assert.Equal(t, 42, n)
	assert.Equal(t, "42", intString.Widen(n))
}

func TestNewNarrowFailureReturnsOriginalUnchanged(t *testing.T) {
	n, ok, orig := intString.Narrow("not-a-number")
	assert.False(t, ok)
	assert.Equal(t, 0, n)
	assert.Equal(t, "not-a-number", orig)
}

func TestIdentityAlwaysNarrows(t *testing.T) {
	id := prism.Identity[int]()
	n, ok, orig := id.Narrow(7)
	require.True(t, ok)
	assert.Equal(t, 7, n)
	assert.Equal(t, 7, orig)
	assert.Equal(t, 7, id.Widen(7))
}

func TestThenComposesNarrowAndWiden(t *testing.T) {
	// string -> int -> bool (even/odd), composed end to end.
	intToParity := prism.Iso(
		func(n int) bool { return n%2 == 0 },
		func(even bool) int {
			if even {
				return 0
			}
			return 1
		},
	)
	composed := prism.Then(intString, intToParity)

	even, ok, _ := composed.Narrow("4")
	require.True(t, ok)
	assert.True(t, even)
	assert.Equal(t, "0", composed.Widen(true))

	_, ok, orig := composed.Narrow("nope")
	assert.False(t, ok)
	assert.Equal(t, "nope", orig)
}

func TestOrTriesBothBranches(t *testing.T) {
	onlyPositive := prism.New(
		func(n int) (int, bool) {
			if n <= 0 {
				return 0, false
			}
			return n, true
		},
		func(n int) int { return n },
	)
	onlyNegative := prism.New(
		func(n int) (int, bool) {
			if n >= 0 {
				return 0, false
			}
			return n, true
		},
		func(n int) int { return n },
	)
	nonzero := prism.Or(onlyPositive, onlyNegative)

	n, ok, _ := nonzero.Narrow(5)
	require.True(t, ok)
	assert.Equal(t, 5, n)

	n, ok, _ = nonzero.Narrow(-5)
	require.True(t, ok)
	assert.Equal(t, -5, n)

	_, ok, orig := nonzero.Narrow(0)
	assert.False(t, ok)
	assert.Equal(t, 0, orig)
}

func TestProductNarrowsBothOrFailsWithOriginalPair(t *testing.T) {
	pairPrism := prism.Product(intString, intString)

	d, ok, _ := pairPrism.Narrow(prism.Pair[string, string]{First: "1", Second: "2"})
	require.True(t, ok)
	assert.Equal(t, 1, d.First)
	assert.Equal(t, 2, d.Second)

	_, ok, orig := pairPrism.Narrow(prism.Pair[string, string]{First: "1", Second: "x"})
	assert.False(t, ok)
	assert.Equal(t, "1", orig.First)
	assert.Equal(t, "x", orig.Second)
}

func TestVectorNarrowsElementwiseAndRecoversOriginalOnFailure(t *testing.T) {
	vecPrism := prism.Vector(intString)

	ds, ok, _ := vecPrism.Narrow([]string{"1", "2", "3"})
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, ds)
	assert.Equal(t, []string{"1", "2", "3"}, vecPrism.Widen(ds))

	_, ok, orig := vecPrism.Narrow([]string{"1", "x", "3"})
	assert.False(t, ok)
	assert.Equal(t, []string{"1", "x", "3"}, orig)
}

func TestFixedArray2EnforcesArity(t *testing.T) {
	pairArr := prism.FixedArray2[int]()

	p, ok, _ := pairArr.Narrow([]int{1, 2})
	require.True(t, ok)
	assert.Equal(t, prism.Pair[int, int]{First: 1, Second: 2}, p)
	assert.Equal(t, []int{1, 2}, pairArr.Widen(p))

	_, ok, orig := pairArr.Narrow([]int{1, 2, 3})
	assert.False(t, ok)
	assert.Equal(t, []int{1, 2, 3}, orig)
}

func TestTryFromWrapsParseOkIdiom(t *testing.T) {
	p := prism.TryFrom(
		func(s string) (int, error) { return strconv.Atoi(s) },
		func(n int) string { return strconv.Itoa(n) },
	)
	n, ok, _ := p.Narrow("10")
	require.True(t, ok)
	assert.Equal(t, 10, n)
	_, ok, orig := p.Narrow("ten")
	assert.False(t, ok)
	assert.Equal(t, "ten", orig)
}
