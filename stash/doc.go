// Instrumented key-value storage: store scalar values under generated keys,
// with call counting and call history recorded in the same external store.
//
// The central type is Stash, which persists opaque records (text, bytes,
// integer, or floating-point) under random UUID keys. Every Store call is
// counted under a stable operation name, and optionally recorded in an
// append-only input/output history, so that separate processes sharing one
// store observe the same instrumentation. The wrapping machinery is exposed
// as composable middleware (CountCalls, RecordCalls) over a StoreFunc, the
// same shape as HTTP middleware.
//
// Writes narrow every value to the store's textual encoding and reads return
// raw bytes; recovering the original type requires the caller to supply the
// conversion (see Convert and the Retrieve* helpers). This asymmetry is
// deliberate: the store has no native type information.
package stash
