package bfvm

import "errors"

// ErrUnmatchedBracket is wrapped into the error returned by Run when a
// program's `[`/`]` pair doesn't close, which a well-formed codegen.Generate
// output never produces but a hand-written or corrupted program might.
var ErrUnmatchedBracket = errors.New("bfvm: unmatched bracket")
