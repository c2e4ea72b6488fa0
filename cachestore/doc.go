// Component for caching string payloads with a fixed TTL and purging.
//
// Includes an interface and implementations using redis and in-process memory.
// Entries expire lazily: there is no active sweep, the store simply stops
// returning an entry once its TTL has elapsed. The TTL is fixed per store
// instance, set at construction.
package cachestore
