package guid

import (
	"database/sql/driver"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

// FromBytes creates a GUID from the first 16 bytes of b. The bytes are
// copied verbatim; b must hold at least 16 bytes.
func FromBytes(b []byte) (GUID, error) {
	var g GUID
	if len(b) < len(g) {
		return g, fmt.Errorf("%w: got %d", ErrInvalidLength, len(b))
	}
	copy(g[:], b)
	return g, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) GUID {
	g, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return g
}

// FromUUID converts a github.com/google/uuid value byte for byte.
func FromUUID(u uuid.UUID) GUID {
	return GUID(u)
}

// UUID returns g as a github.com/google/uuid value.
func (g GUID) UUID() uuid.UUID {
	return uuid.UUID(g)
}

// byteCodec is a binary-to-text encoding of the raw 16 bytes.
// *base64.Encoding satisfies it directly.
type byteCodec interface {
	EncodedLen(n int) int
	Encode(dst, src []byte)
	DecodedLen(n int) int
	Decode(dst, src []byte) (int, error)
}

type hexCodec struct{}

func (hexCodec) EncodedLen(n int) int                { return hex.EncodedLen(n) }
func (hexCodec) Encode(dst, src []byte)              { hex.Encode(dst, src) }
func (hexCodec) DecodedLen(n int) int                { return hex.DecodedLen(n) }
func (hexCodec) Decode(dst, src []byte) (int, error) { return hex.Decode(dst, src) }

var (
	hexForm       byteCodec = hexCodec{}
	base64URLForm byteCodec = base64.RawURLEncoding
	base64StdForm byteCodec = base64.StdEncoding
)

func (g GUID) encodeWith(c byteCodec) string {
	dst := make([]byte, c.EncodedLen(len(g)))
	c.Encode(dst, g[:])
	return string(dst)
}

// decodeWith accepts only the exact encoded length of 16 bytes and
// returns Nil with ErrInvalidFormat otherwise.
func decodeWith(c byteCodec, s string) (GUID, error) {
	var g GUID
	if len(s) != c.EncodedLen(len(g)) {
		return Nil, fmt.Errorf("%w: %d characters", ErrInvalidFormat, len(s))
	}
	dst := make([]byte, c.DecodedLen(len(s)))
	n, err := c.Decode(dst, []byte(s))
	if err != nil || n != len(g) {
		return Nil, ErrInvalidFormat
	}
	copy(g[:], dst)
	return g, nil
}

// EncodeToHex returns the 32 lowercase hex digits of g, no dashes.
func (g GUID) EncodeToHex() string { return g.encodeWith(hexForm) }

// EncodeToBase64 returns g in unpadded URL-safe base64 (22 characters).
func (g GUID) EncodeToBase64() string { return g.encodeWith(base64URLForm) }

// EncodeToBase64Std returns g in padded standard base64 (24 characters).
func (g GUID) EncodeToBase64Std() string { return g.encodeWith(base64StdForm) }

// DecodeFromHex is the inverse of EncodeToHex. Either case is accepted.
func DecodeFromHex(s string) (GUID, error) { return decodeWith(hexForm, s) }

// DecodeFromBase64 is the inverse of EncodeToBase64.
func DecodeFromBase64(s string) (GUID, error) { return decodeWith(base64URLForm, s) }

// DecodeFromBase64Std is the inverse of EncodeToBase64Std.
func DecodeFromBase64Std(s string) (GUID, error) { return decodeWith(base64StdForm, s) }

// MarshalText implements the encoding.TextMarshaler interface
func (g GUID) MarshalText() ([]byte, error) {
	var buf [36]byte
	encodeHex(buf[:], g)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// Unlike FromString it rejects malformed input.
func (g *GUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*g = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface
func (g GUID) MarshalBinary() ([]byte, error) {
	return g[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface
func (g *GUID) UnmarshalBinary(data []byte) error {
	if len(data) != len(g) {
		return ErrInvalidLength
	}
	copy(g[:], data)
	return nil
}

// Scan implements the sql.Scanner interface. A NULL column or an empty
// value scans as Nil.
func (g *GUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		*g = Nil
		return nil
	case string:
		return g.UnmarshalText([]byte(src))
	case []byte:
		if len(src) == len(g) {
			copy(g[:], src)
			return nil
		}
		if len(src) == 0 {
			*g = Nil
			return nil
		}
		return g.UnmarshalText(src)
	default:
		return fmt.Errorf("guid: cannot scan type %T into GUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility
func (g GUID) Value() (driver.Value, error) {
	return g.String(), nil
}
