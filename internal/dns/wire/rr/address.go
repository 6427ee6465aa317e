package rr

import (
	"net"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// AData is the RDATA of an A record: a single IPv4 address.
type AData struct {
	Address net.IP
}

func (AData) Type() Type      { return TypeA }
func (d AData) String() string { return d.Address.String() }

func (d AData) Encode(w *cursor.Writer) error {
	w.WriteIPv4(d.Address)
	return nil
}

func decodeA(r *cursor.Reader) (RData, error) {
	ip, err := r.ReadIPv4()
	if err != nil {
		return nil, err
	}
	return AData{Address: ip}, nil
}

// AAAAData is the RDATA of an AAAA record: a single IPv6 address.
type AAAAData struct {
	Address net.IP
}

func (AAAAData) Type() Type       { return TypeAAAA }
func (d AAAAData) String() string { return d.Address.String() }

func (d AAAAData) Encode(w *cursor.Writer) error {
	w.WriteIPv6(d.Address)
	return nil
}

func decodeAAAA(r *cursor.Reader) (RData, error) {
	ip, err := r.ReadIPv6()
	if err != nil {
		return nil, err
	}
	return AAAAData{Address: ip}, nil
}
