package ir

// Metadata carries information about a Program that is not itself part
// of the Code.
type Metadata struct {
	// TemplateName identifies the program template that produced this
	// Program, e.g. "Codegen50", "JSPI".
	TemplateName string
	// Seed is the PRNG seed the originating Builder was constructed
	// with; re-running the same template with the same Seed, Registry,
	// and weight table reproduces an identical Code (P4).
	Seed int64
}

// Program is a sealed aggregate of a Code and its Metadata, the shape
// exposed to the lifter.
type Program struct {
	Code     Code
	Metadata Metadata
}
