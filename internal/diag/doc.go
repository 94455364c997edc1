// Package diag carries diagnostics across the SharpScript pipeline.
//
// The taxonomy has three strata: lexical diagnostics are never fatal (an
// invalid character becomes an Invalid token, an unterminated string still
// yields a String token running to end of input); parse
// diagnostics replace the offending construct with a null statement and
// parsing continues; runtime diagnostics degrade the offending expression to
// null. None of them unwind — only structured errors raised by system.throw
// do, and those are Values, not diagnostics.
//
// Phases report through the Reporter interface; BagReporter collects into a
// Bag with a capacity limit, and diagfmt renders sorted bags.
package diag
