package field

// A Type represents the kind of value a field holds.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	TypeTime
	TypeBytes
	TypeObjectID
	TypeUUID
	TypeDecimal
	TypeMap
	TypeEnum
	TypeLiteral
	TypeList
	TypeEmbedded
	TypeUnion
	endTypes
)

var typeNames = [...]string{
	TypeInvalid:  "invalid",
	TypeString:   "string",
	TypeInt:      "int",
	TypeFloat:    "float",
	TypeBool:     "bool",
	TypeTime:     "time",
	TypeBytes:    "bytes",
	TypeObjectID: "objectid",
	TypeUUID:     "uuid",
	TypeDecimal:  "decimal",
	TypeMap:      "map",
	TypeEnum:     "enum",
	TypeLiteral:  "literal",
	TypeList:     "list",
	TypeEmbedded: "embedded",
	TypeUnion:    "union",
}

// String returns the name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is a declarable field type.
func (t Type) Valid() bool { return t > TypeInvalid && t < endTypes }

// Composite reports if the type composes other fields or schemas.
func (t Type) Composite() bool {
	return t == TypeList || t == TypeEmbedded || t == TypeUnion
}

// Scalar reports if values of the type are single storage values.
func (t Type) Scalar() bool { return t.Valid() && !t.Composite() }
