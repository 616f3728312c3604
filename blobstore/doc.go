// Package blobstore is a content-addressed blob store on top of any
// provider.Provider. A blob's key is the hex SHA-256 of its bytes, so equal
// content always lands on the same entry and entries never go stale.
//
// Keys:
//
//	blob:<ns>:<64 lowercase hex chars>
//
// Keys handed back to callers are lowercase (or uppercase with
// Options.UpperKeys); lookups accept either case.
//
// Each entry is framed (internal/wire) with the raw digest. Get verifies the
// frame and re-hashes the payload; a mismatch deletes the entry and reports
// a miss.
//
//	st, _ := blobstore.New(blobstore.Options{Namespace: "img", Provider: p})
//	key, _ := st.Put(ctx, data) // "9f86d0..."
//	b, ok, _ := st.Get(ctx, key)
package blobstore
