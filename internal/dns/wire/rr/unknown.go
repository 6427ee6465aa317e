package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// UnknownData is the RDATA of any record type outside the catalog, and the
// fallback for any record that failed type-specific decode or RDLENGTH
// sanitization while lenient decoding was in effect. Raw holds exactly the
// declared RDLENGTH octets; it is never interpreted further.
type UnknownData struct {
	RRType Type
	Raw    []byte
}

func (d UnknownData) Type() Type { return d.RRType }

func (d UnknownData) String() string {
	return fmt.Sprintf("\\# %d %x", len(d.Raw), d.Raw)
}

func (d UnknownData) Encode(w *cursor.Writer) error {
	w.WriteBytes(d.Raw)
	return nil
}
