package predicate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tetratelabs/wazero"
)

// runExport instantiates an ephemeral module from bin and calls the named
// (i32)->i32 export with arg.
//
// The runtime and instance are scoped strictly to this one call: nothing is
// cached between evaluations, and the guest is granted no imports (no WASI,
// no host functions). The interpreter engine is used so evaluation behaves
// identically on every platform.
func runExport(ctx context.Context, bin []byte, export string, arg int32) (int32, error) {
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, bin)
	if err != nil {
		return 0, fmt.Errorf("instantiate module: %w", err)
	}

	fn := mod.ExportedFunction(export)
	if fn == nil {
		return 0, fmt.Errorf("export %q not found", export)
	}

	results, err := fn.Call(ctx, uint64(uint32(arg)))
	if err != nil {
		return 0, fmt.Errorf("call %s: %w", export, err)
	}
	if len(results) != 1 {
		return 0, fmt.Errorf("call %s: expected one result, got %d", export, len(results))
	}
	return int32(uint32(results[0])), nil
}

// decodeWithModule unmasks bytes by feeding each one through a decoder
// module's (i32)->i32 export. The decoder instance lives for exactly one
// decode pass.
func decodeWithModule(ctx context.Context, decoder []byte, export string, masked []byte) ([]byte, error) {
	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, decoder)
	if err != nil {
		return nil, fmt.Errorf("instantiate decoder: %w", err)
	}

	fn := mod.ExportedFunction(export)
	if fn == nil {
		return nil, fmt.Errorf("decoder export %q not found", export)
	}

	out := make([]byte, len(masked))
	for i, b := range masked {
		results, err := fn.Call(ctx, uint64(b))
		if err != nil {
			return nil, fmt.Errorf("decode byte %d: %w", i, err)
		}
		out[i] = byte(results[0])
	}
	return out, nil
}

// RunTrap executes the unreachable trap module and suppresses its fault.
//
// The trap's body is a single unreachable instruction; faulting is its job.
// This is the only boundary where a sandbox fault is swallowed - live digit
// predicates surface faults as errors instead.
func RunTrap(ctx context.Context, input int) {
	if _, err := runExport(ctx, trapModule, "_stage_one", int32(input)); err != nil {
		slog.Debug("trap module faulted as designed", "error", err)
	}
}

// xorBytes returns a copy of b with every byte XORed against key.
func xorBytes(b []byte, key byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = v ^ key
	}
	return out
}
