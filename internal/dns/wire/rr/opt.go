package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
	"github.com/meridiandns/resolver/internal/dns/wire/edns"
)

// OPTData is the RDATA of an EDNS0 pseudo-record (RFC 6891 §6.1): a nested
// TLV stream of sub-options. The requestor's UDP payload size and the
// extended RCODE/version/DO-flag live in the record's Class and TTL header
// slots, not in RDATA; see Record.UDPPayloadSize and friends.
type OPTData struct {
	Options []edns.Option
}

func (OPTData) Type() Type { return TypeOPT }

func (d OPTData) String() string {
	return fmt.Sprintf("OPT %d options", len(d.Options))
}

func (d OPTData) Encode(w *cursor.Writer) error {
	for _, opt := range d.Options {
		switch {
		case opt.NSID != nil:
			w.WriteUint16(uint16(edns.CodeNSID))
			w.WriteUint16(uint16(len(opt.NSID.Data)))
			w.WriteBytes(opt.NSID.Data)
		case opt.EDE != nil:
			extra := []byte(opt.EDE.ExtraText)
			w.WriteUint16(uint16(edns.CodeEDE))
			w.WriteUint16(uint16(2 + len(extra))) // #nosec G115 -- RDATA octets bounded by RDLENGTH (u16) on decode
			w.WriteUint16(opt.EDE.RawInfoCode)
			w.WriteBytes(extra)
		}
	}
	return nil
}

func decodeOPT(r *cursor.Reader, end int) (RData, error) {
	opts, err := edns.DecodeOptions(r, end)
	if err != nil {
		return nil, err
	}
	return OPTData{Options: opts}, nil
}

// UDPPayloadSize returns the requestor's advertised UDP payload size for an
// OPT record, carried in the Class slot per RFC 6891 §6.1.2.
func (r Record) UDPPayloadSize() uint16 {
	return r.Header.Class
}

// ExtendedRcode returns the upper 8 bits of the 12-bit extended RCODE,
// carried in the top octet of an OPT record's TTL slot.
func (r Record) ExtendedRcode() uint8 {
	return uint8(r.Header.TTL >> 24) // #nosec G115 -- top octet of a u32
}

// Version returns the EDNS version, carried in the second octet of an OPT
// record's TTL slot.
func (r Record) Version() uint8 {
	return uint8(r.Header.TTL >> 16) // #nosec G115 -- second octet of a u32
}

// DNSSECOk reports whether the DO bit is set in an OPT record's TTL slot
// (RFC 3225), signaling the requestor accepts DNSSEC RRs.
func (r Record) DNSSECOk() bool {
	return r.Header.TTL&0x00008000 != 0
}
