package countish

import "github.com/OneOfOne/xxhash"

const hashSeed = 4848280

// Fingerprint maps a key to a fixed-size 32-bit digest. Streams of large
// keys can be counted by fingerprint to bound stored-key memory.
func Fingerprint(key string) uint32 {
	return xxhash.ChecksumString32S(key, hashSeed)
}
