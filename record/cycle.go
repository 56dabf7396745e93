package record

import (
	"github.com/dioptra-io/warts-go/flags"
	"github.com/dioptra-io/warts-go/internal/wbuf"
	"github.com/dioptra-io/warts-go/sized"
)

// CycleStart is the 0x0002 record body, denoting the starting point of a
// new measurement cycle.
type CycleStart struct {
	Length        uint32
	CycleID       uint32
	ListID        uint32
	CycleIDHuman  uint32
	StartTime     uint32
	Flags         flags.Flags
	ParamLength   uint16
	HasStopTime   bool
	StopTime      uint32
	HasHostname   bool
	Hostname      string
}

// CycleDefinition is the 0x0003 record body. It shares CycleStart's exact
// layout (the original encodes it as CycleStart reused under a different
// type tag); it is kept as a distinct Go type so the two are not
// interchangeable at the type level despite the identical wire shape.
type CycleDefinition struct {
	CycleStart
}

// Fixup recomputes Flags, ParamLength and Length.
func (c *CycleStart) Fixup() {
	b := flags.NewBuilder()
	b.Push(1, c.HasStopTime, sized.Uint32)
	b.Push(2, c.HasHostname, sized.CString(c.Hostname))

	c.Flags = b.Flags()
	c.ParamLength = uint16(b.ParamLength())

	bodySize := sized.Uint32*3 + sized.Uint32 + c.Flags.WartsSize()
	if c.Flags.Any() {
		bodySize += sized.Uint16 + int(c.ParamLength)
	}

	c.Length = uint32(bodySize)
}

// DecodeCycleStart reads a CycleStart (or identically-shaped
// CycleDefinition) body.
func DecodeCycleStart(r *wbuf.Reader, length uint32) (*CycleStart, error) {
	c := &CycleStart{Length: length}

	var err error
	if c.CycleID, err = r.U32(); err != nil {
		return nil, err
	}
	if c.ListID, err = r.U32(); err != nil {
		return nil, err
	}
	if c.CycleIDHuman, err = r.U32(); err != nil {
		return nil, err
	}
	if c.StartTime, err = r.U32(); err != nil {
		return nil, err
	}
	if c.Flags, err = r.Flags(); err != nil {
		return nil, err
	}

	if c.Flags.Any() {
		if c.ParamLength, err = r.U16(); err != nil {
			return nil, err
		}
	}

	if c.Flags.Get(1) {
		if c.StopTime, err = r.U32(); err != nil {
			return nil, err
		}
		c.HasStopTime = true
	}

	if c.Flags.Get(2) {
		if c.Hostname, err = r.CString(); err != nil {
			return nil, err
		}
		c.HasHostname = true
	}

	return c, nil
}

// Encode appends c's body to w. Call Fixup first.
func (c *CycleStart) Encode(w *wbuf.Writer) error {
	w.U32(c.CycleID)
	w.U32(c.ListID)
	w.U32(c.CycleIDHuman)
	w.U32(c.StartTime)
	w.Flags(c.Flags)

	if c.Flags.Any() {
		w.U16(c.ParamLength)
	}

	if c.HasStopTime {
		w.U32(c.StopTime)
	}
	if c.HasHostname {
		if err := w.CString(c.Hostname); err != nil {
			return err
		}
	}

	return nil
}

// CycleStop is the 0x0004 record body, denoting the end point of a cycle.
// Its flags are always zero, so it carries no param_length or optional
// fields (spec §4.4's special case).
type CycleStop struct {
	Length   uint32
	CycleID  uint32
	StopTime uint32
	Flags    flags.Flags
}

// Fixup sets Flags to zero and recomputes Length.
func (c *CycleStop) Fixup() {
	c.Flags = flags.New(0)
	c.Length = uint32(sized.Uint32*2 + c.Flags.WartsSize())
}

// DecodeCycleStop reads a CycleStop body.
func DecodeCycleStop(r *wbuf.Reader, length uint32) (*CycleStop, error) {
	c := &CycleStop{Length: length}

	var err error
	if c.CycleID, err = r.U32(); err != nil {
		return nil, err
	}
	if c.StopTime, err = r.U32(); err != nil {
		return nil, err
	}
	if c.Flags, err = r.Flags(); err != nil {
		return nil, err
	}

	return c, nil
}

// Encode appends c's body to w. Call Fixup first.
func (c *CycleStop) Encode(w *wbuf.Writer) {
	w.U32(c.CycleID)
	w.U32(c.StopTime)
	w.Flags(c.Flags)
}
