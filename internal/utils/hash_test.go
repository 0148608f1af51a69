package utils

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func md5Prefix(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])[:6]
}

func TestHash_Deterministic(t *testing.T) {
	assert.Equal(t, Hash("a.js", nil), Hash("a.js", nil))
	assert.Equal(t, Hash("a.js", HashCounter{}), Hash("a.js", HashCounter{}))
	assert.Equal(t, md5Prefix("a.js:1"), Hash("a.js", nil))
}

func TestHash_CounterDisambiguates(t *testing.T) {
	counter := HashCounter{}

	first := Hash("x", counter)
	second := Hash("x", counter)

	assert.NotEqual(t, first, second)
	assert.Equal(t, md5Prefix("x:1"), first)
	assert.Equal(t, md5Prefix("x:2"), second)
	assert.Equal(t, 2, counter["x"])
}

func TestHash_IndependentSeeds(t *testing.T) {
	counter := HashCounter{}
	Hash("x", counter)

	assert.Equal(t, md5Prefix("y:1"), Hash("y", counter))
}

func TestHash_Shape(t *testing.T) {
	shape := regexp.MustCompile(`^[0-9a-f]{6}$`)
	for _, seed := range []string{"", "index.js", "src/index.js:getInfo", "ü"} {
		assert.Regexp(t, shape, Hash(seed, nil))
	}
}
