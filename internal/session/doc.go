// Package session gives every browser session its own roster store.
//
// This package is internal to RosterBoard. The main components are:
//
//   - [Registry]: maps session ids to explicitly constructed and initialized
//     [roster.Store] values and discards them on explicit end or idle expiry
//   - [Sweeper]: background loop that expires idle sessions
//   - [Change]: a store mutation tagged with the session it happened in
//
// Sessions are independent: no roster state is shared between them.
package session
