// Package machine implements the hidden progression state machine behind
// the digit gate.
//
// The machine is the only owner of the Indirection Point: a single current
// binding that decides which digit handler receives the next input. External
// input arrives exclusively through the Console sink, one integer per press,
// strictly sequentially.
//
// ARCHITECTURE:
//
// Single Current Binding:
// The binding is an explicit state variable dispatched through one switch.
// Success rebinds to the next handler; every failure - wrong digit, tamper,
// pause, decode fault, blocked gate - collapses into Reset, which rebinds
// to the neutral idle handler. There is no partial rollback, no retry
// budget, and no limit on reset count.
//
// Press Flow (states 1-6):
//  1. Tamper detector on entry: Paused first, then Intact; either trips
//     a reset immediately.
//  2. The state's predicate is evaluated against the pressed digit.
//  3. True advances the binding; false resets.
//
// The fifth handler additionally requires a minimum elapsed time since the
// first press before its predicate is even consulted, and it is where the
// win notification fires. The sixth and seventh handlers are brute-forceable
// decoys guarding nothing; the seventh never holds the machine open.
//
// CONCURRENCY:
// Single-threaded and cooperative. The driver contract is one press at a
// time, each handler running to completion before the next input can
// arrive, so shared fields (binding, first-press timestamp, capture flag)
// need no locking.
package machine
