// Package dedup implements the per-record seen-address table used by the
// dereference pass, plus an optional encode-side helper that detects
// repeated addresses by hash so a caller can emit Reference entries instead
// of re-encoding an address that already appeared.
//
// The plain ordered-append, index-lookup half is grounded directly on the
// original decoder's Vec<Address> (push on first sighting, index on
// Reference). The hash-based duplicate-detection half is adapted from the
// teacher's collision.Tracker, swapping "has this metric name's hash been
// seen" for "has this address's encoding been seen".
package dedup

import (
	"github.com/cespare/xxhash/v2"
	"github.com/dioptra-io/warts-go/address"
)

// Table is an ordered, append-only list of concrete addresses, indexable
// by position the way the wire format's Reference and addr_id fields
// require.
type Table struct {
	addrs []address.Address
	seen  map[uint64]int
}

// New returns an empty table.
func New() *Table {
	return &Table{seen: make(map[uint64]int)}
}

// Push appends a to the table unconditionally and returns its new index.
// This is the decode-side operation: the dereference pass pushes every
// concrete address it encounters, in wire order, with no deduplication.
func (t *Table) Push(a address.Address) int {
	t.addrs = append(t.addrs, a)
	return len(t.addrs) - 1
}

// At returns the address at 0-based index id.
func (t *Table) At(id int) (address.Address, bool) {
	if id < 0 || id >= len(t.addrs) {
		return address.Address{}, false
	}

	return t.addrs[id], true
}

// Len returns the number of addresses pushed so far.
func (t *Table) Len() int {
	return len(t.addrs)
}

// PushDedup is the encode-side counterpart to Push: it hashes a's encoded
// bytes and, if an identical address was already pushed, returns its
// existing index with isNew = false instead of appending a duplicate.
func (t *Table) PushDedup(a address.Address, encoded []byte) (idx int, isNew bool) {
	h := xxhash.Sum64(encoded)
	if existing, ok := t.seen[h]; ok {
		return existing, false
	}

	idx = t.Push(a)
	t.seen[h] = idx

	return idx, true
}
