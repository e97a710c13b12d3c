// Package registry implements the application service that manages the
// session's shopping lists: creating lists, routing item operations to the
// right list and rendering everything for display.
package registry
