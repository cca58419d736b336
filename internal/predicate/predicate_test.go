package predicate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectedDigits documents which single digit each predicate accepts.
var expectedDigits = []struct {
	pred  Predicate
	digit int
}{
	{DigitOne, 1},
	{DigitTwo, 9},
	{DigitThree, 4},
	{DigitFour, 7},
	{DigitFive, 4},
	{DigitSix, 8},
	{DigitSeven, 2},
}

func TestEvaluate_EachPredicateAcceptsOnlyItsDigit(t *testing.T) {
	ctx := context.Background()

	for _, tc := range expectedDigits {
		for v := 0; v <= 9; v++ {
			got, err := Evaluate(ctx, tc.pred, v)
			require.NoError(t, err, "%s should evaluate cleanly for input %d", tc.pred.Label, v)
			assert.Equal(t, v == tc.digit, got,
				"%s(%d): want true only for %d", tc.pred.Label, v, tc.digit)
		}
	}
}

func TestEvaluate_BitTestRejectsNearMisses(t *testing.T) {
	// The sixth check is a bit pattern, not an equality; values sharing
	// bits with 8 must still fail.
	ctx := context.Background()

	for _, v := range []int{9, 10, 12, 16, 24, 0} {
		got, err := Evaluate(ctx, DigitSix, v)
		require.NoError(t, err)
		assert.False(t, got, "digit6 must reject %d", v)
	}
}

func TestEvaluate_PlainWithoutFunction(t *testing.T) {
	p := Predicate{Label: "broken", Encoding: EncodingPlain}

	got, err := Evaluate(context.Background(), p, 1)
	assert.Error(t, err)
	assert.False(t, got)
}

func TestEvaluate_MalformedModule(t *testing.T) {
	p := Predicate{
		Label:    "garbage",
		Encoding: EncodingRaw,
		Module:   []byte{0xde, 0xad, 0xbe, 0xef},
		Export:   "oh_no",
	}

	got, err := Evaluate(context.Background(), p, 1)
	assert.Error(t, err, "malformed bytes should surface as an error, not a crash")
	assert.False(t, got)
}

func TestEvaluate_MissingExport(t *testing.T) {
	p := Predicate{
		Label:    "misnamed",
		Encoding: EncodingRaw,
		Module:   digitTwoModule,
		Export:   "no_such_export",
	}

	got, err := Evaluate(context.Background(), p, 9)
	assert.Error(t, err)
	assert.False(t, got)
}

func TestEvaluate_WrongMaskKey(t *testing.T) {
	// Unmasking with the wrong key yields garbage, which must fail as an
	// error rather than fault the host.
	p := DigitFour
	p.Key = 0x11

	got, err := Evaluate(context.Background(), p, 7)
	assert.Error(t, err)
	assert.False(t, got)
}

func TestDecode_TwoStageMatchesDirectXOR(t *testing.T) {
	// The decoder module computes b ^ 0xBB; running the bytes through it
	// must produce exactly the same output as the plain transform.
	ctx := context.Background()

	viaModule, err := DigitFive.Decode(ctx)
	require.NoError(t, err)

	direct := DigitFive
	direct.Decoder = nil
	viaKey, err := direct.Decode(ctx)
	require.NoError(t, err)

	assert.Equal(t, viaKey, viaModule, "two-stage decode must be byte-identical to XOR 0xBB")
}

func TestDecode_ReturnsFreshCopy(t *testing.T) {
	// Decoding happens per evaluation; a caller scribbling on the result
	// must not corrupt the baked-in table.
	ctx := context.Background()

	first, err := DigitThree.Decode(ctx)
	require.NoError(t, err)
	first[0] ^= 0xFF

	second, err := DigitThree.Decode(ctx)
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), second[0], "stored table must be unaffected by caller mutation")
}

func TestRunTrap_SuppressesFault(t *testing.T) {
	// The trap module's body is unreachable; RunTrap must swallow the
	// fault and return normally.
	assert.NotPanics(t, func() {
		RunTrap(context.Background(), 4)
	})
}

func TestRunExport_TrapModuleFaults(t *testing.T) {
	// Outside RunTrap the same module surfaces its fault as an error.
	_, err := runExport(context.Background(), trapModule, "_stage_one", 0)
	assert.Error(t, err, "unreachable body must report a fault")
}
