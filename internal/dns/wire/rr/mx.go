package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// MXData is the RDATA of a mail-exchange record.
type MXData struct {
	Preference uint16
	Exchange   cursor.Name
}

func (MXData) Type() Type       { return TypeMX }
func (d MXData) String() string { return fmt.Sprintf("%d %s", d.Preference, d.Exchange) }

func (d MXData) Encode(w *cursor.Writer) error {
	w.WriteUint16(d.Preference)
	return w.WriteName(d.Exchange)
}

func decodeMX(r *cursor.Reader) (RData, error) {
	pref, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	exchange, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	return MXData{Preference: pref, Exchange: exchange}, nil
}
