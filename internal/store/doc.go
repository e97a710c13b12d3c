// Package store provides the session-scoped, in-memory list store. State
// lives for the process and is owned by the single CLI goroutine, so no
// locking is needed.
package store
