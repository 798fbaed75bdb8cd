// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides the three screens of the RFP workflow:
//  1. [ListView] : Browse the collection, jump to details/edit, confirm deletes
//  2. [FormView] : Add a new RFP or edit/delete an existing one
//  3. [DetailView] : Read-only projection of a single record
//
// The (shell) [Model] implements bubbletea's standard Init/Update/View pattern
// and acts purely as a dispatcher: each screen is owned by its own controller,
// constructed fresh on navigation and discarded on leave, so no state is
// shared between screens and every mount re-reads truth from the store.
//
// Asynchronous store calls run as tea.Cmd closures that resolve to struct
// messages carrying the mount counter they were issued under. The shell drops
// any message from a previous mount, which keeps a late response from
// updating a screen the user already left.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, y/n, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
