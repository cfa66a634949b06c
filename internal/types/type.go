// Package types implements the JSType/WasmType lattice: primitive
// atoms, structural objects, callable refinements, and a
// parallel set of Wasm value-type atoms, unified under one Type value
// with a structural subtype test. The shape pairs value-type byte
// constants with a function-signature equality helper, generalized
// here from exact equality to a subset ("Is") relation.
package types

// Kind discriminates the payload carried by a Type.
type Kind uint8

const (
	KindPrimitive Kind = iota
	KindObject
	KindFunction
	KindConstructor
	KindWasm
	KindUnion
	// KindAnything and KindNothing are the lattice's top and bottom.
	KindAnything
	KindNothing
)

// Primitive enumerates the JS primitive atoms.
type Primitive uint8

const (
	PrimInteger Primitive = iota
	PrimFloat
	PrimBigInt
	PrimBoolean
	PrimString
	PrimRegExp
	PrimUndefined
	PrimNull
)

var primitiveNames = map[Primitive]string{
	PrimInteger:   "integer",
	PrimFloat:     "float",
	PrimBigInt:    "bigint",
	PrimBoolean:   "boolean",
	PrimString:    "string",
	PrimRegExp:    "regexp",
	PrimUndefined: "undefined",
	PrimNull:      "null",
}

func (p Primitive) String() string { return primitiveNames[p] }

// WasmAtom enumerates the Wasm value-type atoms, including packed
// sub-ints used by struct/array field types.
type WasmAtom uint8

const (
	WasmI32 WasmAtom = iota
	WasmI64
	WasmF32
	WasmF64
	WasmSimd128
	WasmExternRef
	WasmFuncRef
	WasmExnRef
	WasmI8  // packed 8-bit field type
	WasmI16 // packed 16-bit field type
)

var wasmAtomNames = map[WasmAtom]string{
	WasmI32:       "i32",
	WasmI64:       "i64",
	WasmF32:       "f32",
	WasmF64:       "f64",
	WasmSimd128:   "v128",
	WasmExternRef: "externref",
	WasmFuncRef:   "funcref",
	WasmExnRef:    "exnref",
	WasmI8:        "i8",
	WasmI16:       "i16",
}

func (w WasmAtom) String() string { return wasmAtomNames[w] }

// WasmRefKind distinguishes the indexed-reference shapes: indexed
// references to defined wasm type groups — arrays, structs, self/forward
// refs.
type WasmRefKind uint8

const (
	WasmRefStruct WasmRefKind = iota
	WasmRefArray
	WasmRefFunc
	WasmRefSelf
	WasmRefForward
)

// WasmTypeRef is an indexed reference into a module's defined type
// group, used by struct/array field types and block signatures that
// reference a recursive or forward-declared group.
type WasmTypeRef struct {
	Kind     WasmRefKind
	Index    int
	Nullable bool
}

// Signature describes a callable's parameter list and return type:
// (parameter-list) → returnType.
type Signature struct {
	Parameters []Type
	Return     Type
}

// Label describes a Wasm labelled block's parameter list.
type Label struct {
	Parameters []WasmAtom
}

// Type is a single lattice element. Only the fields relevant to Kind are
// meaningful; the zero Type is KindPrimitive/PrimInteger's sibling
// "nothing" only when explicitly constructed via Nothing().
type Type struct {
	Kind Kind

	Primitive Primitive

	// KindObject payload.
	Properties map[string]struct{}
	Methods    map[string]struct{}
	Group      string
	Iterable   bool

	// KindFunction / KindConstructor payload. A nil Signature means "any
	// signature": function(sig).Is(function()) is true for any sig.
	Signature *Signature

	// KindWasm payload.
	WasmAtom  WasmAtom
	WasmLabel *Label
	WasmRef   *WasmTypeRef

	// KindUnion payload.
	Elements []Type
}

// Anything is the lattice top: every type Is(Anything).
func Anything() Type { return Type{Kind: KindAnything} }

// Nothing is the lattice bottom: Nothing().Is(t) for every t, and no
// non-bottom type Is(Nothing()) except Nothing() itself.
func Nothing() Type { return Type{Kind: KindNothing} }

func Integer() Type   { return Type{Kind: KindPrimitive, Primitive: PrimInteger} }
func Float() Type     { return Type{Kind: KindPrimitive, Primitive: PrimFloat} }
func BigInt() Type    { return Type{Kind: KindPrimitive, Primitive: PrimBigInt} }
func Boolean() Type   { return Type{Kind: KindPrimitive, Primitive: PrimBoolean} }
func String() Type    { return Type{Kind: KindPrimitive, Primitive: PrimString} }
func RegExp() Type    { return Type{Kind: KindPrimitive, Primitive: PrimRegExp} }
func Undefined() Type { return Type{Kind: KindPrimitive, Primitive: PrimUndefined} }
func Null() Type      { return Type{Kind: KindPrimitive, Primitive: PrimNull} }

// Object builds a structural object type. A nil properties/methods set
// is treated as empty (never as "any property").
func Object(group string, properties, methods []string) Type {
	t := Type{Kind: KindObject, Group: group}
	if len(properties) > 0 {
		t.Properties = make(map[string]struct{}, len(properties))
		for _, p := range properties {
			t.Properties[p] = struct{}{}
		}
	}
	if len(methods) > 0 {
		t.Methods = make(map[string]struct{}, len(methods))
		for _, m := range methods {
			t.Methods[m] = struct{}{}
		}
	}
	return t
}

// Function builds a callable type. sig == nil means "callable with any
// signature".
func Function(sig *Signature) Type { return Type{Kind: KindFunction, Signature: sig} }

// Constructor builds a `new`-able type. sig == nil means "any signature".
func Constructor(sig *Signature) Type { return Type{Kind: KindConstructor, Signature: sig} }

// Wasm builds a primitive Wasm value-type atom.
func Wasm(a WasmAtom) Type { return Type{Kind: KindWasm, WasmAtom: a} }

// WasmLabelType builds a Wasm labelled-block type.
func WasmLabelType(params []WasmAtom) Type {
	return Type{Kind: KindWasm, WasmLabel: &Label{Parameters: params}}
}

// WasmIndexed builds an indexed reference to a defined Wasm type group.
func WasmIndexed(ref WasmTypeRef) Type { return Type{Kind: KindWasm, WasmRef: &ref} }

// Union builds the least type containing every member of ts. A Union of
// zero types is Nothing; a Union containing Anything collapses to
// Anything; nested unions are flattened.
func Union(ts ...Type) Type {
	var flat []Type
	for _, t := range ts {
		if t.Kind == KindNothing {
			continue
		}
		if t.Kind == KindAnything {
			return Anything()
		}
		if t.Kind == KindUnion {
			flat = append(flat, t.Elements...)
			continue
		}
		flat = append(flat, t)
	}
	switch len(flat) {
	case 0:
		return Nothing()
	case 1:
		return flat[0]
	default:
		return Type{Kind: KindUnion, Elements: flat}
	}
}
