// Package value implements loxi's runtime value model — a tagged union
// of Bool, Number, String, and Nil — plus the lexically scoped
// environment stack pkg/interp evaluates against.
//
// Values are immutable after creation and compared with Equals, which
// follows intrinsic equality within a variant (booleans by identity,
// numbers by IEEE-754 comparison so NaN != NaN, strings byte-for-byte,
// Nil always equal to Nil) and returns false across mismatched variants.
package value
