// Package services defines the [Store] contract for the remote RFP collection
// and implements it over HTTP.
//
// # Store Contract
//
// [Store] covers the five collection operations (list, get, create, update,
// delete). It shapes requests and maps responses; there is no retry, caching,
// or timeout policy at this layer. Every failure is single-shot and
// propagates to the caller.
//
// # Error Handling
//
// [HTTPStore] maps responses to typed errors from the shared package:
//   - [shared.ErrRFPNotFound] : the store reports the id never/no longer exists (404)
//   - [shared.ErrValidation] : the store rejected the payload (400, 422)
//   - [shared.ErrAPIRequest] : transport failure or any other non-2xx status
//
// Callers branch with errors.Is; the TUI deliberately collapses everything
// but validation into one generic user-visible failure message.
package services
