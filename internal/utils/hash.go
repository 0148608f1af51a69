package utils

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
)

// HashCounter counts how often each seed has been hashed. One counter is
// used per source file so identifiers never depend on other files.
type HashCounter map[string]int

// Hash returns a 6 hex character identifier for seed. Repeated seeds within
// the same counter yield different identifiers: the n-th call digests
// "seed:n". A nil counter behaves as a fresh one.
func Hash(seed string, counter HashCounter) string {
	if counter == nil {
		counter = HashCounter{}
	}
	counter[seed]++

	sum := md5.Sum([]byte(seed + ":" + strconv.Itoa(counter[seed])))
	return hex.EncodeToString(sum[:])[:6]
}
