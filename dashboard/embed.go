// Package dashboard provides the embedded roster page for RosterBoard.
//
// The page is a single HTML file with inline CSS and JavaScript. It renders
// the add form, the roster table (or the editable grid), and the summary
// metrics, and keeps itself current through the server's SSE stream.
package dashboard

import "embed"

// Assets is an embedded filesystem containing the roster page.
//
// The filesystem structure is:
//
//	assets/
//	  index.html    - Roster page with inline CSS and JavaScript
//
//go:embed assets/*
var Assets embed.FS
