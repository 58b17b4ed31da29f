package num

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// U64 is an unsigned 64-bit integer stored in the bit pattern of a single
// machine word. The same bits can be viewed as a signed two's complement
// value; U64FromRaw and Raw convert between the two views without changing
// any bits. The zero value represents the number 0 and is ready to use.
type U64 struct {
	bits uint64
}

// ErrOutOfRange is reported by U64FromBigInt when the input cannot be
// represented in 64 bits.
var ErrOutOfRange = errors.New("num: u64 value out of range")

// U64FromRaw creates a U64 from the bit pattern of a signed 64-bit word.
// Negative inputs land in the upper half of the unsigned range; all bits set
// becomes MaxU64. See Raw() for the counterpart.
func U64FromRaw(bits int64) U64 { return U64{bits: uint64(bits)} }

func U64From64(v uint64) U64 { return U64{bits: v} }
func U64From32(v uint32) U64 { return U64{bits: uint64(v)} }
func U64From16(v uint16) U64 { return U64{bits: uint64(v)} }
func U64From8(v uint8) U64   { return U64{bits: uint64(v)} }

// U64FromBigInt creates a U64 from a big.Int. Unlike the raw factories this
// never truncates: a negative input or one of 65 or more bits fails with an
// error wrapping ErrOutOfRange.
func U64FromBigInt(v *big.Int) (out U64, err error) {
	if v.Sign() < 0 || v.BitLen() > 64 {
		return out, fmt.Errorf("num: u64 from big.Int %s: %w", v, ErrOutOfRange)
	}
	return U64{bits: v.Uint64()}, nil
}

// U64FromString creates a U64 from a decimal string. See U64FromStringRadix
// for the error contract.
func U64FromString(s string) (out U64, err error) {
	return U64FromStringRadix(s, 10)
}

// U64FromStringRadix creates a U64 from an unsigned numeral in the given
// radix. The radix must be in [2,36]; digits past 9 are accepted in either
// case. A numeral that does not fit in 64 bits is an error, never a silent
// wraparound. Parse failures wrap the strconv error, so malformed input and
// overflow can be told apart with errors.Is against strconv.ErrSyntax and
// strconv.ErrRange.
func U64FromStringRadix(s string, radix int) (out U64, err error) {
	if radix < 2 || radix > 36 {
		return out, fmt.Errorf("num: u64 radix %d out of range: %w", radix, strconv.ErrSyntax)
	}
	v, err := strconv.ParseUint(s, radix, 64)
	if err != nil {
		return out, fmt.Errorf("num: u64 string %q invalid: %w", s, err)
	}
	return U64{bits: v}, nil
}

func U64FromFloat32(f float32) (out U64, inRange bool) {
	return U64FromFloat64(float64(f))
}

// U64FromFloat64 creates a U64 from a float64. Any fractional portion will
// be truncated towards zero. Floats outside the bounds of a U64 are clamped.
//
// NaN is treated as 0, inRange is set to false.
func U64FromFloat64(f float64) (out U64, inRange bool) {
	if f == 0 {
		return U64{}, true

	} else if f < 0 {
		return U64{}, false

	} else if f < wrapUint64Float {
		return U64{bits: uint64(f)}, true

	} else if f != f { // (f != f) == NaN
		return U64{}, false

	} else {
		return MaxU64, false
	}
}

// RandU64 generates an unsigned 64-bit random integer from an external source.
func RandU64(source RandSource) (out U64) {
	return U64{bits: source.Uint64()}
}

func (u U64) IsZero() bool { return u == ZeroU64 }

// Raw returns the bit pattern of the U64 as a signed 64-bit word. See
// U64FromRaw() for the counterpart.
func (u U64) Raw() int64 { return int64(u.bits) }

func (u U64) String() string {
	return strconv.FormatUint(u.bits, 10)
}

// Text returns the numeral of the U64 in the given base, using lowercase
// letters 'a' to 'z' for digit values 10 to 35. There is no sign and no
// leading zeros. The base must be in [2,36]; anything else panics, the same
// as strconv.FormatUint.
func (u U64) Text(base int) string {
	return strconv.FormatUint(u.bits, base)
}

func (u U64) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U64) IntoBigInt(b *big.Int) {
	b.SetUint64(u.bits)
}

// AsBigInt returns the unsigned magnitude as a non-negative big.Int. The
// conversion is exact for every bit pattern and is the canonical reference
// for all the other conversions.
func (u U64) AsBigInt() (b *big.Int) {
	var v big.Int
	v.SetUint64(u.bits)
	return &v
}

func (u U64) AsBigFloat() (b *big.Float) {
	return new(big.Float).SetInt(u.AsBigInt())
}

// AsFloat64 returns the nearest float64 to the unsigned magnitude. Bit
// patterns with the sign bit set convert as large positive numbers, not as
// negatives.
func (u U64) AsFloat64() float64 {
	return float64(u.bits)
}

// AsFloat32 returns the nearest float32 to the unsigned magnitude.
func (u U64) AsFloat32() float32 {
	return float32(u.bits)
}

// AsInt32 truncates the U64 to its low 32 bits and reinterprets them as a
// signed 32-bit word.
func (u U64) AsInt32() int32 {
	return int32(u.bits)
}

// AsUint64 returns the unsigned magnitude as a native uint64.
func (u U64) AsUint64() uint64 {
	return u.bits
}

// AsInt64 performs a direct cast of the U64 to an int64, which will
// interpret it as a two's complement value.
func (u U64) AsInt64() int64 {
	return int64(u.bits)
}

// IsInt64 reports whether u can be represented in an int64 without changing
// sign.
func (u U64) IsInt64() bool {
	return u.bits&signBit == 0
}

func (u U64) Inc() (v U64) {
	return U64{bits: u.bits + 1}
}

func (u U64) Dec() (v U64) {
	return U64{bits: u.bits - 1}
}

// Add returns u + n. The result wraps around modulo 1<<64; overflow is
// never an error.
func (u U64) Add(n U64) (v U64) {
	return U64{bits: u.bits + n.bits}
}

// Sub returns u - n. The result wraps around modulo 1<<64; underflow is
// never an error.
func (u U64) Sub(n U64) (v U64) {
	return U64{bits: u.bits - n.bits}
}

// Mul returns u * n. The result wraps around modulo 1<<64; overflow is
// never an error.
func (u U64) Mul(n U64) (v U64) {
	return U64{bits: u.bits * n.bits}
}

// Quo returns the quotient u/by for by != 0. If by == 0, a division-by-zero
// run-time panic occurs. Quo implements truncated division (like Go); see
// QuoRem for more details.
func (u U64) Quo(by U64) (q U64) {
	if by.bits == 0 {
		panic("num: u64 division by zero")
	}
	return U64{bits: u.bits / by.bits}
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = u/by     with the result truncated to zero
//	r = u - by*q
//
// The comparison is unsigned throughout, so a dividend with the sign bit set
// divides as a large value rather than a negative one.
func (u U64) QuoRem(by U64) (q, r U64) {
	if by.bits == 0 {
		panic("num: u64 division by zero")
	}
	return U64{bits: u.bits / by.bits}, U64{bits: u.bits % by.bits}
}

// Rem returns the remainder of u%by for by != 0. If by == 0, a
// division-by-zero run-time panic occurs. Rem implements truncated modulus
// (like Go); see QuoRem for more details.
func (u U64) Rem(by U64) (r U64) {
	if by.bits == 0 {
		panic("num: u64 division by zero")
	}
	return U64{bits: u.bits % by.bits}
}

// Cmp orders by unsigned magnitude, returning -1 if u < n, 0 if u == n and
// 1 if u > n. A bit pattern with the sign bit set compares as larger than
// one without, unlike a signed comparison of the same raw words.
func (u U64) Cmp(n U64) int {
	if u.bits > n.bits {
		return 1
	} else if u.bits < n.bits {
		return -1
	}
	return 0
}

// Equal reports whether the bit patterns of u and n are identical. U64 is
// comparable, so values from any of the factories can also be compared with
// '==' and used as map keys directly.
func (u U64) Equal(n U64) bool {
	return u.bits == n.bits
}

func (u U64) GreaterThan(n U64) bool {
	return u.bits > n.bits
}

func (u U64) GreaterOrEqualTo(n U64) bool {
	return u.bits >= n.bits
}

func (u U64) LessThan(n U64) bool {
	return u.bits < n.bits
}

func (u U64) LessOrEqualTo(n U64) bool {
	return u.bits <= n.bits
}

func (u U64) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U64) UnmarshalText(bts []byte) (err error) {
	v, err := U64FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U64) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("num: u64 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := U64FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary encodes the U64 as a fixed 8 big-endian bytes.
func (u U64) MarshalBinary() ([]byte, error) {
	var bts [8]byte
	binary.BigEndian.PutUint64(bts[:], u.bits)
	return bts[:], nil
}

func (u *U64) UnmarshalBinary(bts []byte) error {
	if len(bts) != 8 {
		return fmt.Errorf("num: u64 invalid binary length %d", len(bts))
	}
	u.bits = binary.BigEndian.Uint64(bts)
	return nil
}
