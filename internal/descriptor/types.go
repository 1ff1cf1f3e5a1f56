package descriptor

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	declerrors "github.com/toyz/paramdecl/internal/errors"
)

// TypeKind is the semantic category of a parameter value
type TypeKind int

const (
	StringType TypeKind = iota
	FloatType
	IntType
	BoolType
	AnyType
	SequenceType
	MappingType
	FuncType
	NamedType
)

// String returns the kind name
func (k TypeKind) String() string {
	switch k {
	case StringType:
		return "string"
	case FloatType:
		return "float"
	case IntType:
		return "int"
	case BoolType:
		return "bool"
	case AnyType:
		return "any"
	case SequenceType:
		return "sequence"
	case MappingType:
		return "mapping"
	case FuncType:
		return "func"
	case NamedType:
		return "named"
	default:
		return "unknown"
	}
}

// ValueType describes the values a parameter accepts. Optional is set for
// pointer types, where nil means "not supplied".
type ValueType struct {
	Kind     TypeKind
	Optional bool
	Ident    string     // Go identifier for scalar and named kinds
	Package  string     // package qualifier for named kinds
	Key      *ValueType // mapping key
	Elem     *ValueType // sequence element, mapping value or func result
}

// GoType renders the type as Go source
func (t ValueType) GoType() string {
	var b strings.Builder
	if t.Optional {
		b.WriteByte('*')
	}
	switch t.Kind {
	case SequenceType:
		b.WriteString("[]")
		b.WriteString(t.Elem.GoType())
	case MappingType:
		b.WriteString("map[")
		b.WriteString(t.Key.GoType())
		b.WriteString("]")
		b.WriteString(t.Elem.GoType())
	case FuncType:
		b.WriteString("func()")
		if t.Elem != nil {
			b.WriteString(" ")
			b.WriteString(t.Elem.GoType())
		}
	default:
		if t.Package != "" {
			b.WriteString(t.Package)
			b.WriteByte('.')
		}
		b.WriteString(t.Ident)
	}
	return b.String()
}

// String returns the Go rendering of the type
func (t ValueType) String() string {
	return t.GoType()
}

// Packages returns the package qualifiers referenced by the type
func (t ValueType) Packages() []string {
	var pkgs []string
	var walk func(v *ValueType)
	walk = func(v *ValueType) {
		if v == nil {
			return
		}
		if v.Package != "" {
			pkgs = append(pkgs, v.Package)
		}
		walk(v.Key)
		walk(v.Elem)
	}
	walk(&t)
	return pkgs
}

// Nilable reports whether the zero value of the Go type is nil
func (t ValueType) Nilable() bool {
	if t.Optional {
		return true
	}
	switch t.Kind {
	case AnyType, SequenceType, MappingType, FuncType:
		return true
	}
	return false
}

// typeExpr is the grammar of the Go type expressions accepted in catalogs
type typeExpr struct {
	Pointer bool      `parser:"@'*'?"`
	Slice   *typeExpr `parser:"( '[' ']' @@"`
	Map     *mapExpr  `parser:"| @@"`
	Func    *funcExpr `parser:"| @@"`
	Name    *nameExpr `parser:"| @@ )"`
}

type mapExpr struct {
	Key   *typeExpr `parser:"'map' '[' @@ ']'"`
	Value *typeExpr `parser:"@@"`
}

type funcExpr struct {
	Result *typeExpr `parser:"'func' '(' ')' @@?"`
}

type nameExpr struct {
	Parts []string `parser:"@Ident ( '.' @Ident )*"`
}

var typeParser = participle.MustBuild[typeExpr](
	participle.Lexer(lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[*\[\]().]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseValueType parses a Go type expression such as "*string",
// "map[string]location.Example" or "func() any"
func ParseValueType(expr string) (ValueType, error) {
	ast, err := typeParser.ParseString("", expr)
	if err != nil {
		return ValueType{}, declerrors.NewTypeSyntaxError(expr, err)
	}
	vt, err := ast.valueType()
	if err != nil {
		return ValueType{}, declerrors.NewTypeSyntaxError(expr, err)
	}
	return vt, nil
}

// MustParseValueType is like ParseValueType but panics on error
func MustParseValueType(expr string) ValueType {
	vt, err := ParseValueType(expr)
	if err != nil {
		panic(err)
	}
	return vt
}

func (e *typeExpr) valueType() (ValueType, error) {
	var vt ValueType
	switch {
	case e.Slice != nil:
		elem, err := e.Slice.valueType()
		if err != nil {
			return vt, err
		}
		vt = ValueType{Kind: SequenceType, Elem: &elem}
	case e.Map != nil:
		key, err := e.Map.Key.valueType()
		if err != nil {
			return vt, err
		}
		value, err := e.Map.Value.valueType()
		if err != nil {
			return vt, err
		}
		vt = ValueType{Kind: MappingType, Key: &key, Elem: &value}
	case e.Func != nil:
		vt = ValueType{Kind: FuncType}
		if e.Func.Result != nil {
			result, err := e.Func.Result.valueType()
			if err != nil {
				return vt, err
			}
			vt.Elem = &result
		}
	default:
		vt = namedValueType(e.Name.Parts)
	}
	vt.Optional = e.Pointer
	return vt, nil
}

func namedValueType(parts []string) ValueType {
	if len(parts) > 1 {
		return ValueType{
			Kind:    NamedType,
			Package: strings.Join(parts[:len(parts)-1], "."),
			Ident:   parts[len(parts)-1],
		}
	}

	ident := parts[0]
	vt := ValueType{Ident: ident}
	switch ident {
	case "string":
		vt.Kind = StringType
	case "float64", "float32":
		vt.Kind = FloatType
	case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
		vt.Kind = IntType
	case "bool":
		vt.Kind = BoolType
	case "any":
		vt.Kind = AnyType
	default:
		vt.Kind = NamedType
	}
	return vt
}
