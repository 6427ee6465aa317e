package rr

import (
	"fmt"
	"net"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// WKSData is the RDATA of a well-known-service record (RFC 1035 §3.4.2).
type WKSData struct {
	Address  net.IP
	Protocol uint8
	BitMap   []byte
}

func (WKSData) Type() Type { return TypeWKS }
func (d WKSData) String() string {
	return fmt.Sprintf("%s %d %x", d.Address, d.Protocol, d.BitMap)
}

func (d WKSData) Encode(w *cursor.Writer) error {
	w.WriteIPv4(d.Address)
	w.WriteUint8(d.Protocol)
	w.WriteBytes(d.BitMap)
	return nil
}

func decodeWKS(r *cursor.Reader, end int) (RData, error) {
	ip, err := r.ReadIPv4()
	if err != nil {
		return nil, err
	}
	proto, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	bitmap, err := r.ReadBytes(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return WKSData{Address: ip, Protocol: proto, BitMap: bitmap}, nil
}

// NULLData is the RDATA of a NULL record (RFC 1035 §3.3.10): opaque bytes
// of whatever length RDLENGTH declares.
type NULLData struct {
	Raw []byte
}

func (NULLData) Type() Type       { return TypeNULL }
func (d NULLData) String() string { return fmt.Sprintf("\\# %d %x", len(d.Raw), d.Raw) }

func (d NULLData) Encode(w *cursor.Writer) error {
	w.WriteBytes(d.Raw)
	return nil
}

func decodeNULL(r *cursor.Reader, end int) (RData, error) {
	raw, err := r.ReadBytes(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return NULLData{Raw: raw}, nil
}
