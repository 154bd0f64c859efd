package project

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// Combine строит ключ кэша: H( content || len(salt) || salt ... ).
// Порядок salt значим: одинаковые входы в разном порядке дают разные ключи.
func Combine(content Digest, salt ...string) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	var n [8]byte
	for _, s := range salt {
		binary.LittleEndian.PutUint64(n[:], uint64(len(s)))
		_, _ = h.Write(n[:])
		_, _ = h.Write([]byte(s))
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
