package types

import "math/rand"

// randomElement returns a uniformly random element of a string set, or
// ("", false) if the set is empty. Iteration order over a Go map is
// randomized per-process already, but this repo's determinism (P4)
// contract is "same seed ⇒ same Code", not "same seed ⇒ same map
// iteration order" — so selection is done by indexing into a sorted
// copy using rng, never by relying on map order directly.
func randomElement(set map[string]struct{}, rng *rand.Rand) (string, bool) {
	if len(set) == 0 {
		return "", false
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	sortStrings(names)
	return names[rng.Intn(len(names))], true
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// RandomProperty returns a uniformly random declared property name of t,
// or ("", false) if t has none.
func (t Type) RandomProperty(rng *rand.Rand) (string, bool) {
	return randomElement(t.Properties, rng)
}

// RandomMethod returns a uniformly random declared method name of t, or
// ("", false) if t has none.
func (t Type) RandomMethod(rng *rand.Rand) (string, bool) {
	return randomElement(t.Methods, rng)
}

// weightedPrimitiveFamily is the draw pool for RandomType. The
// value-generator bootstrap ("3 values per kind") applies uniformly
// across these, so the draw family itself is a flat list, not
// pre-weighted.
var weightedPrimitiveFamily = []Type{
	Integer(), Float(), BigInt(), Boolean(), String(), Undefined(),
}

// RandomType draws uniformly from a pool of primitives, arrays, and
// structural objects, for a caller needing a random function
// signature. groups, when non-empty, supplies candidate structural
// object archetypes (typically environment.Env's named groups) so the
// draw can produce realistic object types instead of only primitives.
func RandomType(rng *rand.Rand, groups []Type) Type {
	pool := make([]Type, 0, len(weightedPrimitiveFamily)+len(groups)+1)
	pool = append(pool, weightedPrimitiveFamily...)
	pool = append(pool, Object("Array", []string{"length"}, []string{"push", "pop", "slice"}))
	pool = append(pool, groups...)
	return pool[rng.Intn(len(pool))]
}
