package predicate

// The byte tables below are compiled WebAssembly modules. Each live one
// exports a single relevant (i32)->i32 check that returns 1 for its digit:
//
//	int oh_no(int pressed) { return pressed == N ? 1 : 0; }
//
// They are constructed at process start and never mutated; masked tables
// are unmasked per evaluation.

// digitOneCheck is expressed directly in host code.
func digitOneCheck(v int) bool {
	return v == 1
}

// digitSixCheck isolates 8 with bit tests instead of a literal equality.
func digitSixCheck(v int) bool {
	return (v&0x03) == 0 && (v&0x04) == 0 && (v>>3) == 1
}

// digitSevenCheck is a trivial equality; at this depth brute force is the
// intended path and no obfuscation is spent on it.
func digitSevenCheck(v int) bool {
	return v == 2
}

// digitTwoModule exports oh_no, true for 9.
var digitTwoModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0x01, 0x86, 0x80, 0x80,
	0x80, 0x00, 0x01, 0x60, 0x01, 0x7f, 0x01, 0x7f, 0x03, 0x82, 0x80, 0x80,
	0x80, 0x00, 0x01, 0x00, 0x04, 0x84, 0x80, 0x80, 0x80, 0x00, 0x01, 0x70,
	0x00, 0x00, 0x05, 0x83, 0x80, 0x80, 0x80, 0x00, 0x01, 0x00, 0x01, 0x06,
	0x81, 0x80, 0x80, 0x80, 0x00, 0x00, 0x07, 0x92, 0x80, 0x80, 0x80, 0x00,
	0x02, 0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00, 0x05, 0x6f,
	0x68, 0x5f, 0x6e, 0x6f, 0x00, 0x00, 0x0a, 0x8d, 0x80, 0x80, 0x80, 0x00,
	0x01, 0x87, 0x80, 0x80, 0x80, 0x00, 0x00, 0x20, 0x00, 0x41, 0x09, 0x46,
	0x0b,
}

// digitThreeModule exports _oh_no, true for 4. Same check shape as
// digitTwoModule but built without the padded LEB sections, so the two
// tables look nothing alike in a hex dump.
var digitThreeModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0x01, 0x06, 0x01, 0x60,
	0x01, 0x7f, 0x01, 0x7f, 0x03, 0x02, 0x01, 0x00, 0x07, 0x0a, 0x01, 0x06,
	0x5f, 0x6f, 0x68, 0x5f, 0x6e, 0x6f, 0x00, 0x00, 0x0a, 0x09, 0x01, 0x07,
	0x00, 0x20, 0x00, 0x41, 0x04, 0x46, 0x0b,
}

// digitFourMasked is a module masked with XOR 0xAA. Unmasked it exports
// oh_no, true for 7.
var digitFourMasked = []byte{
	0xaa, 0xcb, 0xd9, 0xc7, 0xab, 0xaa, 0xaa, 0xaa, 0xab, 0x2c, 0x2a, 0x2a,
	0x2a, 0xaa, 0xab, 0xca, 0xab, 0xd5, 0xab, 0xd5, 0xa9, 0x28, 0x2a, 0x2a,
	0x2a, 0xaa, 0xab, 0xaa, 0xae, 0x2e, 0x2a, 0x2a, 0x2a, 0xaa, 0xab, 0xda,
	0xaa, 0xaa, 0xaf, 0x29, 0x2a, 0x2a, 0x2a, 0xaa, 0xab, 0xaa, 0xab, 0xac,
	0x2b, 0x2a, 0x2a, 0x2a, 0xaa, 0xaa, 0xad, 0x38, 0x2a, 0x2a, 0x2a, 0xaa,
	0xa8, 0xac, 0xc7, 0xcf, 0xc7, 0xc5, 0xd8, 0xd3, 0xa8, 0xaa, 0xaf, 0xc5,
	0xc2, 0xf5, 0xc4, 0xc5, 0xaa, 0xaa, 0xa0, 0x27, 0x2a, 0x2a, 0x2a, 0xaa,
	0xab, 0x2d, 0x2a, 0x2a, 0x2a, 0xaa, 0xaa, 0x8a, 0xaa, 0xeb, 0xad, 0xec,
	0xa1,
}

// digitFiveDecoder exports lolwat(b) = b ^ 0xBB. It is itself unmasked;
// its only job is unmasking digitFiveMasked one byte at a time.
var digitFiveDecoder = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0x01, 0x86, 0x80, 0x80,
	0x80, 0x00, 0x01, 0x60, 0x01, 0x7f, 0x01, 0x7f, 0x03, 0x82, 0x80, 0x80,
	0x80, 0x00, 0x01, 0x00, 0x04, 0x84, 0x80, 0x80, 0x80, 0x00, 0x01, 0x70,
	0x00, 0x00, 0x05, 0x83, 0x80, 0x80, 0x80, 0x00, 0x01, 0x00, 0x01, 0x06,
	0x81, 0x80, 0x80, 0x80, 0x00, 0x00, 0x07, 0x93, 0x80, 0x80, 0x80, 0x00,
	0x02, 0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, 0x02, 0x00, 0x06, 0x6c,
	0x6f, 0x6c, 0x77, 0x61, 0x74, 0x00, 0x00, 0x0a, 0x8e, 0x80, 0x80, 0x80,
	0x00, 0x01, 0x88, 0x80, 0x80, 0x80, 0x00, 0x00, 0x20, 0x00, 0x41, 0xbb,
	0x01, 0x73, 0x0b,
}

// digitFiveMasked is a module masked with XOR 0xBB. Unmasked it exports
// wetsand, true for 4.
var digitFiveMasked = []byte{
	0xbb, 0xda, 0xc8, 0xd6, 0xba, 0xbb, 0xbb, 0xbb, 0xba, 0x3d, 0x3b, 0x3b,
	0x3b, 0xbb, 0xba, 0xdb, 0xba, 0xc4, 0xba, 0xc4, 0xb8, 0x39, 0x3b, 0x3b,
	0x3b, 0xbb, 0xba, 0xbb, 0xbf, 0x3f, 0x3b, 0x3b, 0x3b, 0xbb, 0xba, 0xcb,
	0xbb, 0xbb, 0xbe, 0x38, 0x3b, 0x3b, 0x3b, 0xbb, 0xba, 0xbb, 0xba, 0xbd,
	0x3a, 0x3b, 0x3b, 0x3b, 0xbb, 0xbb, 0xbc, 0x2f, 0x3b, 0x3b, 0x3b, 0xbb,
	0xb9, 0xbd, 0xd6, 0xde, 0xd6, 0xd4, 0xc9, 0xc2, 0xb9, 0xbb, 0xbc, 0xcc,
	0xde, 0xcf, 0xc8, 0xda, 0xd5, 0xdf, 0xbb, 0xbb, 0xb1, 0x36, 0x3b, 0x3b,
	0x3b, 0xbb, 0xba, 0x3c, 0x3b, 0x3b, 0x3b, 0xbb, 0xbb, 0x9b, 0xbb, 0xfa,
	0xbf, 0xfd, 0xb0,
}

// trapModule exports _stage_one whose body is a single unreachable
// instruction. Run only on the fifth-digit failure path, fault suppressed.
var trapModule = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0x01, 0x06, 0x01, 0x60,
	0x01, 0x7f, 0x01, 0x7f, 0x03, 0x02, 0x01, 0x00, 0x07, 0x0e, 0x01, 0x0a,
	0x5f, 0x73, 0x74, 0x61, 0x67, 0x65, 0x5f, 0x6f, 0x6e, 0x65, 0x00, 0x00,
	0x0a, 0x05, 0x01, 0x03, 0x00, 0x00, 0x0b,
}

// The seven digit predicates, in sequence order.
var (
	DigitOne = Predicate{
		Label:    "digit1",
		Encoding: EncodingPlain,
		Fn:       digitOneCheck,
	}

	DigitTwo = Predicate{
		Label:    "digit2",
		Encoding: EncodingRaw,
		Module:   digitTwoModule,
		Export:   "oh_no",
	}

	DigitThree = Predicate{
		Label:    "digit3",
		Encoding: EncodingRaw,
		Module:   digitThreeModule,
		Export:   "_oh_no",
	}

	DigitFour = Predicate{
		Label:    "digit4",
		Encoding: EncodingXOR,
		Module:   digitFourMasked,
		Export:   "oh_no",
		Key:      0xAA,
	}

	DigitFive = Predicate{
		Label:         "digit5",
		Encoding:      EncodingXOR,
		Module:        digitFiveMasked,
		Export:        "wetsand",
		Key:           0xBB,
		Decoder:       digitFiveDecoder,
		DecoderExport: "lolwat",
	}

	DigitSix = Predicate{
		Label:    "digit6",
		Encoding: EncodingPlain,
		Fn:       digitSixCheck,
	}

	DigitSeven = Predicate{
		Label:    "digit7",
		Encoding: EncodingPlain,
		Fn:       digitSevenCheck,
	}
)
