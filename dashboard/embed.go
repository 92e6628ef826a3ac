// Package dashboard provides the embedded web UI assets for StatusLight.
//
// This package uses Go's embed directive to include the LED simulator page
// at compile time. This enables single-binary deployment without external
// asset files.
//
// The embedded assets are served by the server package at "/" and
// "/index.html". Users of the statuslight library should not need to
// interact with this package directly.
package dashboard

import "embed"

// Assets is an embedded filesystem containing the dashboard web UI.
//
// The filesystem structure is:
//
//	assets/
//	  index.html    - LED simulator page with inline CSS and JavaScript
//
// Assets is used by the server package to serve the dashboard. The embed
// directive includes all files in the assets directory at compile time.
//
//go:embed assets/*
var Assets embed.FS
