package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// MINFOData is the RDATA of a mailbox/mail-list information record.
type MINFOData struct {
	RMailBX cursor.Name
	EMailBX cursor.Name
}

func (MINFOData) Type() Type       { return TypeMINFO }
func (d MINFOData) String() string { return fmt.Sprintf("%s %s", d.RMailBX, d.EMailBX) }

func (d MINFOData) Encode(w *cursor.Writer) error {
	if err := w.WriteName(d.RMailBX); err != nil {
		return err
	}
	return w.WriteName(d.EMailBX)
}

func decodeMINFO(r *cursor.Reader) (RData, error) {
	rmailbx, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	emailbx, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	return MINFOData{RMailBX: rmailbx, EMailBX: emailbx}, nil
}

// RPData is the RDATA of a responsible-person record (RFC 1183 §2.2).
type RPData struct {
	Mbox cursor.Name
	TXT  cursor.Name
}

func (RPData) Type() Type       { return TypeRP }
func (d RPData) String() string { return fmt.Sprintf("%s %s", d.Mbox, d.TXT) }

func (d RPData) Encode(w *cursor.Writer) error {
	if err := w.WriteName(d.Mbox); err != nil {
		return err
	}
	return w.WriteName(d.TXT)
}

func decodeRP(r *cursor.Reader) (RData, error) {
	mbox, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	txt, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	return RPData{Mbox: mbox, TXT: txt}, nil
}

// AFSDBData is the RDATA of an AFS database location record (RFC 1183 §1).
type AFSDBData struct {
	Subtype  uint16
	Hostname cursor.Name
}

func (AFSDBData) Type() Type       { return TypeAFSDB }
func (d AFSDBData) String() string { return fmt.Sprintf("%d %s", d.Subtype, d.Hostname) }

func (d AFSDBData) Encode(w *cursor.Writer) error {
	w.WriteUint16(d.Subtype)
	return w.WriteName(d.Hostname)
}

func decodeAFSDB(r *cursor.Reader) (RData, error) {
	subtype, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	hostname, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	return AFSDBData{Subtype: subtype, Hostname: hostname}, nil
}
