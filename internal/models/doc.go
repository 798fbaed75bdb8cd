// Package models defines the RFP data model shared by the client, the TUI,
// and the bundled collection server.
//
// The wire contract is a flat JSON object with snake_case field names, stable
// across all /rfps operations. [RFP] is the persisted shape (id assigned by
// the store); [RFPDraft] is the id-less payload sent on create and update, so
// a caller cannot supply or mutate an id by construction.
package models
