package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// HINFOData is the RDATA of a host-information record.
type HINFOData struct {
	CPU cursor.CharacterString
	OS  cursor.CharacterString
}

func (HINFOData) Type() Type { return TypeHINFO }
func (d HINFOData) String() string {
	return fmt.Sprintf("%q %q", d.CPU.Escaped, d.OS.Escaped)
}

func (d HINFOData) Encode(w *cursor.Writer) error {
	w.WriteCharacterString(d.CPU.Raw)
	w.WriteCharacterString(d.OS.Raw)
	return nil
}

func decodeHINFO(r *cursor.Reader) (RData, error) {
	cpu, err := r.ReadCharacterString()
	if err != nil {
		return nil, err
	}
	os, err := r.ReadCharacterString()
	if err != nil {
		return nil, err
	}
	return HINFOData{CPU: cpu, OS: os}, nil
}
