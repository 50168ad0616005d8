package social

import (
	"crypto/ed25519"
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/mr-tron/base58"
)

// Serialization follows the borsh conventions the on-chain program uses:
// fixed-width integers are little-endian, sequences and strings carry a
// u32 length prefix.
//
// The put helpers assume the destination was sized up front and never
// fail. The get helpers bounds-check every read so malformed input
// surfaces as an error instead of a panic.

func putUint16(dst []byte, v uint16, offset *int) {
	binary.LittleEndian.PutUint16(dst[*offset:], v)
	*offset += 2
}

func putUint32(dst []byte, v uint32, offset *int) {
	binary.LittleEndian.PutUint32(dst[*offset:], v)
	*offset += 4
}

func putUint64(dst []byte, v uint64, offset *int) {
	binary.LittleEndian.PutUint64(dst[*offset:], v)
	*offset += 8
}

func putKey(dst []byte, src ed25519.PublicKey, offset *int) {
	copy(dst[*offset:], src)
	*offset += ed25519.PublicKeySize
}

func putString(dst []byte, src string, offset *int) {
	putUint32(dst, uint32(len(src)), offset)
	copy(dst[*offset:], src)
	*offset += len(src)
}

func getUint16(src []byte, dst *uint16, offset *int) error {
	if len(src)-*offset < 2 {
		return ErrTruncatedData
	}

	*dst = binary.LittleEndian.Uint16(src[*offset:])
	*offset += 2
	return nil
}

func getUint32(src []byte, dst *uint32, offset *int) error {
	if len(src)-*offset < 4 {
		return ErrTruncatedData
	}

	*dst = binary.LittleEndian.Uint32(src[*offset:])
	*offset += 4
	return nil
}

func getUint64(src []byte, dst *uint64, offset *int) error {
	if len(src)-*offset < 8 {
		return ErrTruncatedData
	}

	*dst = binary.LittleEndian.Uint64(src[*offset:])
	*offset += 8
	return nil
}

func getKey(src []byte, dst *ed25519.PublicKey, offset *int) error {
	if len(src)-*offset < ed25519.PublicKeySize {
		return ErrTruncatedData
	}

	*dst = make([]byte, ed25519.PublicKeySize)
	copy(*dst, src[*offset:])
	*offset += ed25519.PublicKeySize
	return nil
}

func getString(src []byte, dst *string, offset *int) error {
	var length uint32
	if err := getUint32(src, &length, offset); err != nil {
		return err
	}

	// Guard the int conversion on 32-bit platforms.
	if uint64(length) > uint64(math.MaxInt32) {
		return ErrInvalidEncoding
	}
	if len(src)-*offset < int(length) {
		return ErrTruncatedData
	}

	raw := src[*offset : *offset+int(length)]
	if !utf8.Valid(raw) {
		return ErrInvalidEncoding
	}

	*dst = string(raw)
	*offset += int(length)
	return nil
}

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
