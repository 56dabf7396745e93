// Package dereference implements the post-decode address resolution pass
// (spec §4.5): within a single record, an Address::Reference(id) is a
// pointer into the set of concrete addresses already seen earlier in that
// same record, in the order they appeared on the wire; separately, the
// record's own *_addr_id integer fields point into the same table.
//
// Grounded on original_source/src/object.rs's Object::dereference, which
// implements this for Traceroute only (leaving MultipathTraceroute as a
// todo!()). This package generalizes the same table-walk to
// MultipathTraceroute's node and *_addr_id fields.
//
// The indexing asymmetry is deliberate and preserved exactly, not "fixed":
// Address::Reference(id) is 0-based against the table built by walking
// addresses in wire order, while every *_addr_id field (SrcAddrID,
// DstAddrID, per-hop/per-node AddrID) is 1-based against that same table.
package dereference

import (
	"github.com/dioptra-io/warts-go/address"
	"github.com/dioptra-io/warts-go/errs"
	"github.com/dioptra-io/warts-go/internal/dedup"
	"github.com/dioptra-io/warts-go/record"
)

// Option configures a single dereference call.
type Option func(*options)

type options struct {
	table *dedup.Table
}

// WithTable threads a caller-supplied table into the resolution pass
// instead of starting from an empty one, and leaves it populated with
// every address seen afterward. This is the hook for resolving references
// across multiple records sharing one address table (scamper cycles do
// this at the file level); the default, a fresh table per call, matches
// how original_source/src/object.rs's Object::dereference scopes it.
func WithTable(table *dedup.Table) Option {
	return func(o *options) { o.table = table }
}

func resolveOptions(opts []Option) *dedup.Table {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.table != nil {
		return o.table
	}

	return dedup.New()
}

// Traceroute resolves t in place: first every Address::Reference among
// SrcAddr, DstAddr and each hop's Addr (0-based, built by wire order),
// then every *_addr_id field (1-based) against the same completed table.
//
// Each *_addr_id field is cleared (Has*AddrID set false) once resolved, so
// a second call finds nothing left to resolve there; an already-concrete
// Addr field is simply re-pushed into a fresh table and left unchanged.
// Together this makes a second call a true no-op on t, per spec §8.
func Traceroute(t *record.Traceroute, opts ...Option) error {
	table := resolveOptions(opts)

	if err := pushOrResolve(table, t.HasSrcAddr, &t.SrcAddr); err != nil {
		return err
	}
	if err := pushOrResolve(table, t.HasDstAddr, &t.DstAddr); err != nil {
		return err
	}

	for _, hop := range t.Hops {
		if err := pushOrResolve(table, hop.HasAddr, &hop.Addr); err != nil {
			return err
		}
	}

	if t.HasSrcAddrID {
		addr, ok := table.At(int(t.SrcAddrID) - 1)
		if !ok {
			return errs.ErrDanglingAddressReference
		}
		t.SrcAddr, t.HasSrcAddr = addr, true
		t.HasSrcAddrID = false
	}
	if t.HasDstAddrID {
		addr, ok := table.At(int(t.DstAddrID) - 1)
		if !ok {
			return errs.ErrDanglingAddressReference
		}
		t.DstAddr, t.HasDstAddr = addr, true
		t.HasDstAddrID = false
	}

	for _, hop := range t.Hops {
		if !hop.HasAddrID {
			continue
		}

		addr, ok := table.At(int(hop.AddrID) - 1)
		if !ok {
			return errs.ErrDanglingAddressReference
		}
		hop.Addr, hop.HasAddr = addr, true
		hop.HasAddrID = false
	}

	return nil
}

// MultipathTraceroute resolves t in place, analogously to Traceroute: the
// reference table is built by walking SrcAddr, DstAddr and then each
// node's Addr, after which *_addr_id fields (SrcAddrID, DstAddrID, and
// per-node AddrID) are resolved 1-based against it.
func MultipathTraceroute(t *record.MultipathTraceroute, opts ...Option) error {
	table := resolveOptions(opts)

	if err := pushOrResolve(table, t.HasSrcAddr, &t.SrcAddr); err != nil {
		return err
	}
	if err := pushOrResolve(table, t.HasDstAddr, &t.DstAddr); err != nil {
		return err
	}

	for _, node := range t.Nodes {
		if err := pushOrResolve(table, node.HasAddr, &node.Addr); err != nil {
			return err
		}
	}

	if t.HasSrcAddrID {
		addr, ok := table.At(int(t.SrcAddrID) - 1)
		if !ok {
			return errs.ErrDanglingAddressReference
		}
		t.SrcAddr, t.HasSrcAddr = addr, true
		t.HasSrcAddrID = false
	}
	if t.HasDstAddrID {
		addr, ok := table.At(int(t.DstAddrID) - 1)
		if !ok {
			return errs.ErrDanglingAddressReference
		}
		t.DstAddr, t.HasDstAddr = addr, true
		t.HasDstAddrID = false
	}

	for _, node := range t.Nodes {
		if !node.HasAddrID {
			continue
		}

		addr, ok := table.At(int(node.AddrID) - 1)
		if !ok {
			return errs.ErrDanglingAddressReference
		}
		node.Addr, node.HasAddr = addr, true
		node.HasAddrID = false
	}

	return nil
}

// pushOrResolve is a no-op if present is false. Otherwise it either
// replaces *addr in place with the table entry it references (addr is a
// Reference, 0-based) or appends *addr to the table as a newly seen
// concrete address.
func pushOrResolve(table *dedup.Table, present bool, addr *address.Address) error {
	if !present {
		return nil
	}

	if addr.Kind != address.KindReference {
		table.Push(*addr)
		return nil
	}

	resolved, ok := table.At(int(addr.Ref))
	if !ok {
		return errs.ErrDanglingAddressReference
	}

	*addr = resolved

	return nil
}
