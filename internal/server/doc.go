// Package server provides the HTTP server for the RosterBoard page and API.
//
// This package is internal to RosterBoard and handles all HTTP concerns:
//
//   - Page serving: the embedded HTML page at "/"
//   - REST API: the roster view at "/api/roster" (GET, PUT for grid-edit
//     commits), the add form at "/api/students" and session reset at
//     "/api/session"
//   - Server-Sent Events: a fresh view after every change at "/api/sse"
//   - Export: the current projection as a spreadsheet at "/api/export"
//
// Every request is bound to a session through a cookie; each session has its
// own roster store. The server supports graceful shutdown via context
// cancellation, with a 5-second timeout for in-flight requests.
package server
