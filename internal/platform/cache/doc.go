// Package cache provides a Redis-backed read-through cache in front of the
// user store. The user directory listing is the only cached read; every write
// evicts it.
package cache
