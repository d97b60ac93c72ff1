package format

type DataType uint8

const (
	TypeNull        DataType = 0x0 // TypeNull represents an untyped column.
	TypeBoolean     DataType = 0x1 // TypeBoolean represents a bit-packed boolean column.
	TypeInt32       DataType = 0x2 // TypeInt32 represents a 32-bit signed integer column.
	TypeInt64       DataType = 0x3 // TypeInt64 represents a 64-bit signed integer column.
	TypeFloat64     DataType = 0x4 // TypeFloat64 represents a 64-bit float column.
	TypeBinary      DataType = 0x5 // TypeBinary represents opaque bytes with 32-bit offsets.
	TypeLargeBinary DataType = 0x6 // TypeLargeBinary represents opaque bytes with 64-bit offsets.
	TypeUtf8        DataType = 0x7 // TypeUtf8 represents UTF-8 strings with 32-bit offsets.
	TypeLargeUtf8   DataType = 0x8 // TypeLargeUtf8 represents UTF-8 strings with 64-bit offsets.
)

// OffsetWidth is the byte width of the offsets used by a variable-length type.
type OffsetWidth uint8

const (
	OffsetNone   OffsetWidth = 0 // OffsetNone is reported by types without an offsets buffer.
	OffsetNarrow OffsetWidth = 4 // OffsetNarrow is the width of int32 offsets.
	OffsetWide   OffsetWidth = 8 // OffsetWide is the width of int64 offsets.
)

func (t DataType) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBoolean:
		return "Boolean"
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeFloat64:
		return "Float64"
	case TypeBinary:
		return "Binary"
	case TypeLargeBinary:
		return "LargeBinary"
	case TypeUtf8:
		return "Utf8"
	case TypeLargeUtf8:
		return "LargeUtf8"
	default:
		return "Unknown"
	}
}

// IsBinaryLike reports whether the type is stored as offsets plus a flat value buffer.
func (t DataType) IsBinaryLike() bool {
	return t.OffsetWidth() != OffsetNone
}

// IsString reports whether values of the type must be valid UTF-8.
func (t DataType) IsString() bool {
	return t == TypeUtf8 || t == TypeLargeUtf8
}

// OffsetWidth returns the offset width required by the type, or OffsetNone for
// types that are not binary-like.
func (t DataType) OffsetWidth() OffsetWidth {
	switch t { //nolint: exhaustive
	case TypeBinary, TypeUtf8:
		return OffsetNarrow
	case TypeLargeBinary, TypeLargeUtf8:
		return OffsetWide
	default:
		return OffsetNone
	}
}

// BinaryType returns the raw binary type for the given offset width.
func BinaryType(width OffsetWidth) DataType {
	if width == OffsetWide {
		return TypeLargeBinary
	}

	return TypeBinary
}

// StringType returns the UTF-8 string type for the given offset width.
func StringType(width OffsetWidth) DataType {
	if width == OffsetWide {
		return TypeLargeUtf8
	}

	return TypeUtf8
}
