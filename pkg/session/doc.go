/*
Package session keeps many puzzle instances alive side by side.

Each puzzle gets a random UUID and its own lock, so stages of one puzzle are
serialised while different puzzles progress independently. Locks are
reference counted and dropped once nobody holds them.

Replicas sharing a store (see pkg/adapters/redis) add WithLocker so the
per-puzzle lock also holds across processes.
*/
package session
