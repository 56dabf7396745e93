// Package record implements the warts record bodies: List, CycleStart,
// CycleStop, CycleDefinition, Traceroute (+ TraceProbe), Ping (+ PingProbe),
// and MultipathTraceroute (+ its node/link/probe-set/probe/reply
// subrecords).
//
// Every record follows the uniform body protocol: flags, an optional
// param_length, the catalogued optional fields in flag order, then any
// fixed-position tail. Each type exposes Decode/Encode (mirroring the
// teacher's Parse/Bytes pair, renamed since these compose over a streaming
// wbuf.Reader/Writer rather than a single fixed-size header buffer) and a
// Fixup method that recomputes flags/param_length/length per spec §4.4.
package record

import (
	"github.com/dioptra-io/warts-go/flags"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/dioptra-io/warts-go/sized"
)

// List is the 0x0001 record body.
type List struct {
	Length      uint32
	ListID      uint32
	ListIDHuman uint32
	Name        string

	Flags       flags.Flags
	ParamLength uint16

	HasDescription bool
	Description    string
	HasMonitor     bool
	MonitorName    string
}

// Fixup recomputes Flags, ParamLength and Length from the optional fields'
// presence.
func (l *List) Fixup() {
	b := flags.NewBuilder()
	b.Push(1, l.HasDescription, sized.CString(l.Description))
	b.Push(2, l.HasMonitor, sized.CString(l.MonitorName))

	l.Flags = b.Flags()
	l.ParamLength = uint16(b.ParamLength())

	bodySize := sized.Uint32*2 + sized.CString(l.Name) + l.Flags.WartsSize()
	if l.Flags.Any() {
		bodySize += sized.Uint16 + int(l.ParamLength)
	}

	l.Length = uint32(bodySize)
}

// DecodeList reads a List body. The length:u32 prefix has already been
// consumed by the caller (object framing owns it).
func DecodeList(r *wbuf.Reader, length uint32) (*List, error) {
	l := &List{Length: length}

	var err error
	if l.ListID, err = r.U32(); err != nil {
		return nil, err
	}
	if l.ListIDHuman, err = r.U32(); err != nil {
		return nil, err
	}
	if l.Name, err = r.CString(); err != nil {
		return nil, err
	}
	if l.Flags, err = r.Flags(); err != nil {
		return nil, err
	}

	if l.Flags.Any() {
		if l.ParamLength, err = r.U16(); err != nil {
			return nil, err
		}
	}

	if l.Flags.Get(1) {
		if l.Description, err = r.CString(); err != nil {
			return nil, err
		}
		l.HasDescription = true
	}

	if l.Flags.Get(2) {
		if l.MonitorName, err = r.CString(); err != nil {
			return nil, err
		}
		l.HasMonitor = true
	}

	return l, nil
}

// Encode appends l's body (everything after the length prefix) to w.
// Call Fixup first.
func (l *List) Encode(w *wbuf.Writer) error {
	w.U32(l.ListID)
	w.U32(l.ListIDHuman)
	if err := w.CString(l.Name); err != nil {
		return err
	}
	w.Flags(l.Flags)

	if l.Flags.Any() {
		w.U16(l.ParamLength)
	}

	if l.HasDescription {
		if err := w.CString(l.Description); err != nil {
			return err
		}
	}
	if l.HasMonitor {
		if err := w.CString(l.MonitorName); err != nil {
			return err
		}
	}

	return nil
}
