package cas

import (
	"encoding/hex"
	"fmt"
	"hash/fnv"
)

// addressSize is the length in bytes of a SHA-1 digest.
const addressSize = 20

// addressTextSize is the length of an Address in hexadecimal text form.
const addressTextSize = addressSize * 2

// Address is the SHA-1 digest that uniquely identifies a stored object.
// The zero Address is well-formed: it is the all-zero digest and prints
// as 40 zeros. Every Address value is length-checked at construction, so
// callers never need to re-validate one they already hold.
type Address [addressSize]byte

// ParseAddress parses the 40-character hexadecimal text form of an
// Address. Both upper- and lower-case hex digits are accepted. It fails
// with an error wrapping [ErrBadLength] if text is not exactly 40
// characters, or [ErrBadHex] if any character is outside [0-9A-Fa-f].
// No whitespace trimming is performed: a leading or trailing space is
// rejected as a length or hex error, never tolerated input.
func ParseAddress(text string) (Address, error) {
	var a Address
	if len(text) != addressTextSize {
		return Address{}, fmt.Errorf("%w: %q is not %d characters", ErrBadLength, text, addressTextSize)
	}
	if _, err := hex.Decode(a[:], []byte(text)); err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrBadHex, err)
	}
	return a, nil
}

// TryParseAddress is the non-throwing form of [ParseAddress].
func TryParseAddress(text string) (Address, bool) {
	a, err := ParseAddress(text)
	if err != nil {
		return Address{}, false
	}
	return a, true
}

// IsValidAddressText reports whether text is a well-formed 40-character
// hexadecimal address, without constructing an Address.
func IsValidAddressText(text string) bool {
	if len(text) != addressTextSize {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsValidAddressBytes reports whether b has the length required of a raw
// Address (20 bytes). It performs no other validation: any 20-byte value
// is a well-formed Address.
func IsValidAddressBytes(b []byte) bool {
	return len(b) == addressSize
}

// AddressFromBytes constructs an Address from a raw 20-byte digest. It
// fails with an error wrapping [ErrBadLength] if b is not exactly 20
// bytes.
func AddressFromBytes(b []byte) (Address, error) {
	if !IsValidAddressBytes(b) {
		return Address{}, fmt.Errorf("%w: got %d bytes, want %d", ErrBadLength, len(b), addressSize)
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// String returns the upper-case 40-character hexadecimal form of a.
func (a Address) String() string {
	return fmt.Sprintf("%X", a[:])
}

// IsZero reports whether a is the all-zero address, the zero value of
// Address and the value held by a default-constructed one.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Hash returns a process-stable FNV-1a hash of a, suitable for use as a
// key in hash-based containers that need an explicit hash function
// rather than relying on Address's natural comparability.
func (a Address) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write(a[:]) // hash.Hash.Write never fails
	return h.Sum64()
}
