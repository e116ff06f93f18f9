// Package roster holds the canonical student collection for one session and
// derives the read-only display projection from it.
//
// This package is internal to RosterBoard. The main components are:
//
//   - [Store]: the per-session canonical collection with add, reconcile and
//     projection operations plus pub/sub for re-render signals
//   - [Record]: one student row as stored
//   - [Projection]: the derived rows handed to the page, with the rating glyph
//     and an optional display row number
//   - [Rating]: the score to glyph transform
//   - [Variant]: widget configuration presets (score domain, columns, seeds)
//
// Row identity is positional. Reconciling an edited projection compares the
// whole table against the stored one and replaces it wholesale when they differ,
// so reordering rows is indistinguishable from editing them in place.
package roster
