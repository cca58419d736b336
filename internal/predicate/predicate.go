// Package predicate evaluates the obfuscated digit checks.
//
// Each digit of the sequence is guarded by a Predicate: either a plain host
// function or a tiny import-free WebAssembly module with a single relevant
// (i32)->i32 export that returns 1 for the expected digit and 0 otherwise.
// Masked variants are unmasked on every evaluation - decoding is cheap and
// side-effect-free, and re-decoding per call is part of the design (a cached
// decode would change observable behavior under memory inspection).
package predicate

import (
	"context"
	"fmt"
)

// Predicate is an immutable encoded digit check.
//
// For EncodingPlain only Fn is set. For EncodingRaw and EncodingXOR, Module
// holds the (possibly masked) WebAssembly bytes and Export names the check
// function. Two-stage predicates additionally carry a Decoder module whose
// DecoderExport unmasks Module byte by byte; single-stage XOR predicates
// unmask with Key directly.
type Predicate struct {
	Label    string
	Encoding Encoding

	Fn func(v int) bool

	Module        []byte
	Export        string
	Key           byte
	Decoder       []byte
	DecoderExport string
}

// Evaluate decodes the predicate as needed and applies it to input.
//
// Bytecode predicates are run in a fresh sandbox instance that is discarded
// before returning. Errors cover malformed bytes, missing exports, and guest
// faults; callers decide whether a fault is expected (see RunTrap for the
// one path where it is).
func Evaluate(ctx context.Context, p Predicate, input int) (bool, error) {
	switch p.Encoding {
	case EncodingPlain:
		if p.Fn == nil {
			return false, fmt.Errorf("predicate %s: plain encoding without function", p.Label)
		}
		return p.Fn(input), nil

	case EncodingRaw, EncodingXOR:
		bin, err := p.Decode(ctx)
		if err != nil {
			return false, fmt.Errorf("predicate %s: %w", p.Label, err)
		}
		result, err := runExport(ctx, bin, p.Export, int32(input))
		if err != nil {
			return false, fmt.Errorf("predicate %s: %w", p.Label, err)
		}
		return result != 0, nil

	default:
		return false, fmt.Errorf("predicate %s: unknown encoding %d", p.Label, int(p.Encoding))
	}
}

// Decode returns the executable module bytes for a bytecode predicate.
//
// Raw predicates return a copy of their bytes unchanged. XOR predicates
// unmask with their key, or - for two-stage predicates - by running every
// byte through the decoder module's export. The output bytes are identical
// either way; the decoder vehicle is obscurity, not arithmetic.
func (p Predicate) Decode(ctx context.Context) ([]byte, error) {
	switch p.Encoding {
	case EncodingRaw:
		out := make([]byte, len(p.Module))
		copy(out, p.Module)
		return out, nil

	case EncodingXOR:
		if p.Decoder != nil {
			return decodeWithModule(ctx, p.Decoder, p.DecoderExport, p.Module)
		}
		return xorBytes(p.Module, p.Key), nil

	default:
		return nil, fmt.Errorf("encoding %s carries no module bytes", p.Encoding)
	}
}
