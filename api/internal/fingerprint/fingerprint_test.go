package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lowerHex64 = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestContentHashKnownVectors(t *testing.T) {
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", ContentHash(""))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", ContentHash("abc"))
}

func TestContentHashIsRawAndDeterministic(t *testing.T) {
	inputs := []string{
		"The Future of Artificial Intelligence in Business",
		"  leading and trailing whitespace kept  \n",
		"Ünïcödé ✓ 日本語",
	}
	for _, in := range inputs {
		got := ContentHash(in)
		assert.Regexp(t, lowerHex64, got)
		assert.Equal(t, got, ContentHash(in))

		want := sha256.Sum256([]byte(in))
		assert.Equal(t, hex.EncodeToString(want[:]), got)
	}

	assert.NotEqual(t, ContentHash("text"), ContentHash(" text"), "content must not be trimmed")
}

func TestContentCIDCarriesContentHash(t *testing.T) {
	content := "Specific content to attest"

	s := ContentCID(content)
	require.NotEmpty(t, s)

	c, err := cid.Decode(s)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), c.Version())
	assert.Equal(t, uint64(cid.Raw), c.Type())

	dm, err := multihash.Decode(c.Hash())
	require.NoError(t, err)
	assert.Equal(t, uint64(multihash.SHA2_256), dm.Code)
	assert.Equal(t, ContentHash(content), hex.EncodeToString(dm.Digest))
}
