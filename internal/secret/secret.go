// Package secret provides the password cipher collaborator consumed by the
// perforce synthesizer.
//
// The contract is idempotence, not strength: IsEncrypted(Encrypt(x)) must be
// true, so a value that already went through Encrypt passes through
// unchanged on the next invocation.
package secret

import "encoding/base64"

// Cipher scrambles checkout passwords before they land in a configuration
// tree.
type Cipher interface {
	// IsEncrypted reports whether the value already went through Encrypt.
	IsEncrypted(value string) bool
	// Encrypt scrambles a plaintext value. Encrypted input is returned as is.
	Encrypt(value string) string
}

// scrambleTag marks a scrambled value. The consuming integration recognizes
// values by this prefix, so it must survive serialization verbatim.
const scrambleTag = "0f0f"

var scrambleKey = []byte("scmforge")

// Scrambler is the default Cipher: a recognizable prefix tag followed by
// base64 of the key-rotated plaintext. Reversible on purpose; the consuming
// system needs the original password back.
type Scrambler struct{}

func (Scrambler) IsEncrypted(value string) bool {
	return len(value) > len(scrambleTag) && value[:len(scrambleTag)] == scrambleTag
}

func (s Scrambler) Encrypt(value string) string {
	if value == "" || s.IsEncrypted(value) {
		return value
	}

	return scrambleTag + base64.StdEncoding.EncodeToString(rotate([]byte(value)))
}

// Decrypt restores the plaintext of a scrambled value. Unscrambled input is
// returned as is.
func (s Scrambler) Decrypt(value string) string {
	if !s.IsEncrypted(value) {
		return value
	}

	raw, err := base64.StdEncoding.DecodeString(value[len(scrambleTag):])
	if err != nil {
		return value
	}

	return string(rotate(raw))
}

func rotate(raw []byte) []byte {
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[i] = b ^ scrambleKey[i%len(scrambleKey)]
	}

	return out
}

// Plaintext passes values through untouched and never reports them as
// encrypted. Intended for tests.
type Plaintext struct{}

func (Plaintext) IsEncrypted(string) bool { return false }

func (Plaintext) Encrypt(value string) string { return value }
