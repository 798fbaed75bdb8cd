// Package server provides HTTP routing, middleware, and the /rfps collection
// handlers for the bundled reference server.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first),
// following the standard Go pattern. The [BasicRouter] implementation uses
// [http.ServeMux] internally.
//
// # Collection Handler
//
// [RFPHandler] implements [Handler] and serves the five collection
// operations against a [repositories.RFPRepository]:
//
//	GET    /rfps       list all records
//	POST   /rfps       create, server assigns the id
//	GET    /rfps/{id}  fetch one record
//	PUT    /rfps/{id}  full replace
//	DELETE /rfps/{id}  remove; 404 once the id is gone
//
// The server is deliberately a plain CRUD resource: no auth, no pagination,
// no conflict resolution. Clients treat it as the single source of truth and
// refetch after mutations.
package server
