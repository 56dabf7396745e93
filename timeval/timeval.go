// Package timeval implements the warts Timeval entity: a {seconds,
// microseconds} timestamp pair, and its conversion to and from time.Time
// (playing the role the original implementation gave chrono.NaiveDateTime).
package timeval

import (
	"time"

	"github.com/dioptra-io/warts-go/internal/wbuf"
)

// Timeval is a timestamp with microsecond resolution, encoded as two
// big-endian u32 fields.
type Timeval struct {
	Seconds      uint32
	Microseconds uint32
}

// WartsSize is always 8.
func (Timeval) WartsSize() int { return 8 }

// FromTime converts t to a Timeval, truncating sub-microsecond precision
// and the timestamp to a 32-bit count of seconds since the Unix epoch.
func FromTime(t time.Time) Timeval {
	return Timeval{
		Seconds:      uint32(t.Unix()),
		Microseconds: uint32(t.Nanosecond() / 1000),
	}
}

// Time converts tv to a UTC time.Time.
func (tv Timeval) Time() time.Time {
	return time.Unix(int64(tv.Seconds), int64(tv.Microseconds)*1000).UTC()
}

// Decode reads a Timeval from r.
func Decode(r *wbuf.Reader) (Timeval, error) {
	sec, err := r.U32()
	if err != nil {
		return Timeval{}, err
	}

	usec, err := r.U32()
	if err != nil {
		return Timeval{}, err
	}

	return Timeval{Seconds: sec, Microseconds: usec}, nil
}

// Encode appends tv's wire form to w.
func (tv Timeval) Encode(w *wbuf.Writer) {
	w.U32(tv.Seconds)
	w.U32(tv.Microseconds)
}
