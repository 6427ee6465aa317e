package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// NAPTRData is the RDATA of a naming-authority-pointer record (RFC 3403).
type NAPTRData struct {
	Order       uint16
	Preference  uint16
	Flags       cursor.CharacterString
	Services    cursor.CharacterString
	Regexp      cursor.CharacterString
	Replacement cursor.Name
}

func (NAPTRData) Type() Type { return TypeNAPTR }
func (d NAPTRData) String() string {
	return fmt.Sprintf("%d %d %q %q %q %s", d.Order, d.Preference, d.Flags.Escaped, d.Services.Escaped, d.Regexp.Escaped, d.Replacement)
}

func (d NAPTRData) Encode(w *cursor.Writer) error {
	w.WriteUint16(d.Order)
	w.WriteUint16(d.Preference)
	w.WriteCharacterString(d.Flags.Raw)
	w.WriteCharacterString(d.Services.Raw)
	w.WriteCharacterString(d.Regexp.Raw)
	return w.WriteName(d.Replacement)
}

func decodeNAPTR(r *cursor.Reader) (RData, error) {
	order, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	pref, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	flags, err := r.ReadCharacterString()
	if err != nil {
		return nil, err
	}
	services, err := r.ReadCharacterString()
	if err != nil {
		return nil, err
	}
	regexp, err := r.ReadCharacterString()
	if err != nil {
		return nil, err
	}
	replacement, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	return NAPTRData{Order: order, Preference: pref, Flags: flags, Services: services, Regexp: regexp, Replacement: replacement}, nil
}
