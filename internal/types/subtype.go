package types

// Is reports whether t may be used wherever a value of type u is
// required — the structural subtype test. Read as "t.Is(u)" ⇔ "a value
// of type t satisfies a requirement of type u".
func (t Type) Is(u Type) bool {
	if t.Kind == KindNothing {
		return true
	}
	if u.Kind == KindNothing {
		return t.Kind == KindNothing
	}
	if u.Kind == KindAnything {
		return true
	}
	if t.Kind == KindAnything {
		return u.Kind == KindAnything
	}

	if t.Kind == KindUnion {
		for _, e := range t.Elements {
			if !e.Is(u) {
				return false
			}
		}
		return true
	}
	if u.Kind == KindUnion {
		for _, e := range u.Elements {
			if t.Is(e) {
				return true
			}
		}
		return false
	}

	if t.Kind != u.Kind {
		return false
	}

	switch t.Kind {
	case KindPrimitive:
		return t.Primitive == u.Primitive
	case KindObject:
		return t.isObject(u)
	case KindFunction, KindConstructor:
		return t.isCallable(u)
	case KindWasm:
		return t.isWasm(u)
	default:
		return false
	}
}

func (t Type) isObject(u Type) bool {
	if u.Group != "" && t.Group != u.Group {
		return false
	}
	for p := range u.Properties {
		if _, ok := t.Properties[p]; !ok {
			return false
		}
	}
	for m := range u.Methods {
		if _, ok := t.Methods[m]; !ok {
			return false
		}
	}
	return true
}

// isCallable: an unconstrained requirement (u.Signature == nil) is
// satisfied by any callable; a constrained requirement needs an exact
// parameter/return match, since the builder has no way to prove a
// looser compatibility at generation time.
func (t Type) isCallable(u Type) bool {
	if u.Signature == nil {
		return true
	}
	if t.Signature == nil {
		return false
	}
	return t.Signature.equal(*u.Signature)
}

func (s Signature) equal(o Signature) bool {
	if len(s.Parameters) != len(o.Parameters) {
		return false
	}
	for i := range s.Parameters {
		if !s.Parameters[i].Equal(o.Parameters[i]) {
			return false
		}
	}
	return s.Return.Equal(o.Return)
}

func (t Type) isWasm(u Type) bool {
	if u.WasmLabel != nil {
		if t.WasmLabel == nil || len(t.WasmLabel.Parameters) != len(u.WasmLabel.Parameters) {
			return false
		}
		for i := range u.WasmLabel.Parameters {
			if t.WasmLabel.Parameters[i] != u.WasmLabel.Parameters[i] {
				return false
			}
		}
		return true
	}
	if u.WasmRef != nil {
		if t.WasmRef == nil {
			return false
		}
		if t.WasmRef.Kind != u.WasmRef.Kind || t.WasmRef.Index != u.WasmRef.Index {
			return false
		}
		// A non-nullable requirement cannot be satisfied by a nullable
		// reference; a nullable requirement accepts either.
		if !u.WasmRef.Nullable && t.WasmRef.Nullable {
			return false
		}
		return true
	}
	return t.WasmAtom == u.WasmAtom
}

// Equal reports strict structural equality, used for exact signature
// matching and test assertions; unlike Is it is symmetric.
func (t Type) Equal(u Type) bool {
	return t.Is(u) && u.Is(t)
}
