// Package dev provides development-time helpers: a polling file watcher and
// a WebSocket reload server that pushes change notifications to connected
// browsers. Neither is wired into production builds; the serve command mounts
// them only when hot reload is enabled.
package dev
