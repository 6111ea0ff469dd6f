// Package fingerprint derives the content identifiers placed in an attestation.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ContentHash returns the lowercase hex SHA-256 of content's UTF-8 bytes,
// exactly as received.
func ContentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// ContentCID returns a CIDv1 using the "raw" multicodec and a sha2-256
// multihash. Its digest is the same value ContentHash encodes.
func ContentCID(content string) string {
	sum, err := multihash.Sum([]byte(content), multihash.SHA2_256, -1)
	if err != nil {
		// only reachable for unknown hash codes
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}
