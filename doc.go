/*
Package num provides an unsigned 64-bit integer type (U64) that shares its
bit pattern with a signed 64-bit word, implementing a useful subset of the
big.Int API over the full range [0, 1<<64).

U64 is a value type; all operations return new values.

Simple example:

	u1 := U64FromRaw(-1) // all bits set
	fmt.Println(u1)
	// Output: 18446744073709551615

U64 can be created from a variety of sources:

	U64FromRaw(bits int64) U64
	U64From64(v uint64) U64
	U64From32(v uint32) U64
	U64From16(v uint16) U64
	U64From8(v uint8) U64
	U64FromString(s string) (out U64, err error)
	U64FromStringRadix(s string, radix int) (out U64, err error)
	U64FromBigInt(v *big.Int) (out U64, err error)
	U64FromFloat32(f float32) (out U64, inRange bool)
	U64FromFloat64(f float64) (out U64, inRange bool)

U64 supports the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - encoding.BinaryMarshaler
  - encoding.BinaryUnmarshaler
*/
package num
