package writers

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest returns the xxhash64 of data as 16 hex digits. Two runs over the
// same input produce the same digest regardless of thread count.
func Digest(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
