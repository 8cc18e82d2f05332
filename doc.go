// Package cas implements a content-addressable store backed by a local
// filesystem directory.
//
// Callers submit opaque byte streams through [Store.Write]; the store
// persists each stream under a stable [Address] equal to the SHA-1 digest
// of the bytes, and serves the bytes back given that address through
// [Store.TryOpen]. Identical content submitted twice occupies storage only
// once: [Store.Write] is idempotent and deduplicates by construction.
//
// The store additionally persists pre-encoded sibling variants of each
// object (see [Encoding]) so that consumers wanting a compressed form pay
// no encoding cost at read time.
//
// A Store does not provide cryptographic collision resistance beyond what
// SHA-1 offers, cross-machine replication, transactional multi-object
// commits, or modification of stored bytes: objects are immutable from the
// moment they are written until deleted.
package cas
