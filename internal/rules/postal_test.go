package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPostal(t *testing.T) {
	assert.True(t, MatchPostal("T2P 1J9"))
	assert.True(t, MatchPostal("t2p 1j9"))
	assert.True(t, MatchPostal("T2P\t1J9"))
	assert.True(t, MatchPostal("T2P\v1J9"))
	assert.True(t, MatchPostal("T2P\n1J9"))
	assert.True(t, MatchPostal("T2P 1J9 Canada"), "trailing text after a full match is tolerated")

	assert.False(t, MatchPostal("T2P1J9"))
	assert.False(t, MatchPostal(" T2P 1J9"), "match must start at position 0")
	assert.False(t, MatchPostal("T2P 1J"))
	assert.False(t, MatchPostal("AB T2P 1J9"))
	assert.False(t, MatchPostal(""))
}

func TestSplitCompactPostal(t *testing.T) {
	a, b, ok := SplitCompactPostal("t3bob1")
	assert.True(t, ok)
	assert.Equal(t, "t3b", a)
	assert.Equal(t, "ob1", b)

	a, b, ok = SplitCompactPostal("T3B0B1XYZ")
	assert.True(t, ok)
	assert.Equal(t, "T3B", a)
	assert.Equal(t, "0B1", b)

	_, _, ok = SplitCompactPostal("T3B 0B1")
	assert.False(t, ok)
	_, _, ok = SplitCompactPostal("12345")
	assert.False(t, ok)
}

func TestSplitCompactPostal_LetterOForZero(t *testing.T) {
	a, b, ok := SplitCompactPostal("T2POBO")
	assert.True(t, ok)
	assert.Equal(t, "T2P", a)
	assert.Equal(t, "OBO", b)

	a, b, ok = SplitCompactPostal("T3BOB1")
	assert.True(t, ok)
	assert.Equal(t, "T3B", a)
	assert.Equal(t, "OB1", b)

	// The middle of the second half is always a letter.
	_, _, ok = SplitCompactPostal("T2PO1O")
	assert.False(t, ok)

	// Only the second half is lenient.
	_, _, ok = SplitCompactPostal("TOP1J9")
	assert.False(t, ok)
}
