package crypto

import "crypto/sha512"

// SHA384 hashes the concatenation of chunks.
func SHA384(chunks ...[]byte) (out [sha512.Size384]byte) {
	h := sha512.New384()
	for _, c := range chunks {
		h.Write(c)
	}
	h.Sum(out[:0])
	return
}
