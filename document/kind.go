package document

//go:generate go tool stringer -type=Kind -linecomment

// Kind identifies which variant of the tagged union a Node holds.
type Kind int

const (
	// ScalarKind is a string, number, boolean, or null.
	ScalarKind Kind = iota // scalar
	// SequenceKind is an ordered list of nodes.
	SequenceKind // sequence
	// MappingKind is an ordered set of unique string keys.
	MappingKind // mapping
)
