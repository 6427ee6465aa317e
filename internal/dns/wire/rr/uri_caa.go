package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// URIData is the RDATA of a URI record (RFC 7553). Target occupies the
// remainder of RDATA after the two u16 fields (rdlength - 4 octets).
type URIData struct {
	Priority uint16
	Weight   uint16
	Target   string
}

func (URIData) Type() Type { return TypeURI }
func (d URIData) String() string {
	return fmt.Sprintf("%d %d %q", d.Priority, d.Weight, d.Target)
}

func (d URIData) Encode(w *cursor.Writer) error {
	w.WriteUint16(d.Priority)
	w.WriteUint16(d.Weight)
	w.WriteBytes([]byte(d.Target))
	return nil
}

func decodeURI(r *cursor.Reader, end int) (RData, error) {
	prio, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	weight, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	target, err := r.ReadString(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return URIData{Priority: prio, Weight: weight, Target: target}, nil
}

// CAAData is the RDATA of a certification-authority-authorization record
// (RFC 6844 / RFC 8659). Value occupies the remainder of RDATA after the
// flags octet and the length-prefixed tag (rdlength - 2 - tag_len octets).
type CAAData struct {
	Flags uint8
	Tag   cursor.CharacterString
	Value []byte
}

func (CAAData) Type() Type { return TypeCAA }
func (d CAAData) String() string {
	return fmt.Sprintf("%d %s %q", d.Flags, d.Tag.Escaped, d.Value)
}

func (d CAAData) Encode(w *cursor.Writer) error {
	w.WriteUint8(d.Flags)
	w.WriteCharacterString(d.Tag.Raw)
	w.WriteBytes(d.Value)
	return nil
}

func decodeCAA(r *cursor.Reader, end int) (RData, error) {
	flags, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	tag, err := r.ReadCharacterString()
	if err != nil {
		return nil, err
	}
	value, err := r.ReadBytes(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return CAAData{Flags: flags, Tag: tag, Value: value}, nil
}
