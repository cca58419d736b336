package predicate

import "fmt"

// Encoding identifies how a predicate's check logic is packaged.
type Encoding int

const (
	// EncodingPlain predicates are ordinary host functions.
	EncodingPlain Encoding = iota

	// EncodingRaw predicates are self-contained WebAssembly modules,
	// stored as-is.
	EncodingRaw

	// EncodingXOR predicates are WebAssembly modules masked with a
	// single-byte XOR key, unmasked on every evaluation.
	EncodingXOR
)

// String returns a short name for logging.
func (e Encoding) String() string {
	switch e {
	case EncodingPlain:
		return "plain"
	case EncodingRaw:
		return "raw"
	case EncodingXOR:
		return "xor"
	default:
		return fmt.Sprintf("encoding(%d)", int(e))
	}
}
