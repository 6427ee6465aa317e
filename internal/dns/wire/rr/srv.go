package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// SRVData is the RDATA of a service-location record (RFC 2782).
type SRVData struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   cursor.Name
}

func (SRVData) Type() Type { return TypeSRV }
func (d SRVData) String() string {
	return fmt.Sprintf("%d %d %d %s", d.Priority, d.Weight, d.Port, d.Target)
}

func (d SRVData) Encode(w *cursor.Writer) error {
	w.WriteUint16(d.Priority)
	w.WriteUint16(d.Weight)
	w.WriteUint16(d.Port)
	return w.WriteName(d.Target)
}

func decodeSRV(r *cursor.Reader) (RData, error) {
	prio, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	weight, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	port, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	target, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	return SRVData{Priority: prio, Weight: weight, Port: port, Target: target}, nil
}
