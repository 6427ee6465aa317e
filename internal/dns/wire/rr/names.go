package rr

import "github.com/meridiandns/resolver/internal/dns/wire/cursor"

// NameData is the RDATA shared by every record whose payload is a single
// domain name: NS, CNAME, PTR, and the obsolete/experimental mail records
// MD, MF, MB, MG, MR.
type NameData struct {
	RRType Type
	Name   cursor.Name
}

func (d NameData) Type() Type      { return d.RRType }
func (d NameData) String() string { return d.Name.String() }

func (d NameData) Encode(w *cursor.Writer) error {
	return w.WriteName(d.Name)
}

func decodeName(typ Type, r *cursor.Reader) (RData, error) {
	name, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	return NameData{RRType: typ, Name: name}, nil
}
