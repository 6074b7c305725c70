// Package rqcodec implements the two-stage RaptorQ codec pipeline:
// InterWorkMem/InterProgram turn a set of received encoding symbols
// into the intermediate block, and OutWorkMem/OutProgram turn the
// intermediate block into any requested set of output symbols.
//
// Grounded on _examples/original_source/api/rq_api.h and
// api/tvrq_api.c, which express the same two stages as a C ABI over
// caller-managed memory; here each stage is a plain Go value owning
// its own slices instead, with GetMemSizes-equivalent helpers kept as
// a secondary API for callers that want to preallocate.
package rqcodec

import "errors"

// ErrNoMem is returned when a caller-supplied buffer (the input to the
// Execute methods) is smaller than the operation requires.
//
// Grounded on _examples/original_source/api/rq_api.h (RQ_ERR_ENOMEM).
var ErrNoMem = errors.New("rqcodec: insufficient buffer size")

// ErrDomain is returned when a source block size K is outside the
// range rfc6330.ParametersFor supports.
//
// Grounded on _examples/original_source/api/rq_api.h (RQ_ERR_EDOM).
var ErrDomain = errors.New("rqcodec: K out of domain")

// ErrMaxIDsReached is returned by AddIDs when adding would exceed the
// work memory's symbol-id capacity; the ids that do fit are still
// recorded.
//
// Grounded on _examples/original_source/api/rq_api.h
// (RQ_ERR_MAX_IDS_REACHED).
var ErrMaxIDsReached = errors.New("rqcodec: maximum number of symbol ids reached")

// ErrInsufficientIDs is returned by Compile when the received symbol
// ids do not provide enough linearly independent constraint rows to
// recover the intermediate block.
//
// Grounded on _examples/original_source/api/rq_api.h
// (RQ_ERR_INSUFF_IDS).
var ErrInsufficientIDs = errors.New("rqcodec: insufficient symbol ids to decode")

// DefaultMaxExtra is the default allowance of extra repair-symbol ids
// an InterWorkMem can absorb beyond K, when the caller does not know a
// tighter bound in advance.
//
// Grounded on _examples/original_source/api/rq_api.h
// (RQ_DEFAULT_MAX_EXTRA).
const DefaultMaxExtra = 30
