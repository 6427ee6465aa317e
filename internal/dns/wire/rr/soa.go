package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// SOAData is the RDATA of a start-of-authority record.
type SOAData struct {
	MName   cursor.Name
	RName   cursor.Name
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (SOAData) Type() Type { return TypeSOA }

func (d SOAData) String() string {
	return fmt.Sprintf("%s %s %d %d %d %d %d", d.MName, d.RName, d.Serial, d.Refresh, d.Retry, d.Expire, d.Minimum)
}

func (d SOAData) Encode(w *cursor.Writer) error {
	if err := w.WriteName(d.MName); err != nil {
		return err
	}
	if err := w.WriteName(d.RName); err != nil {
		return err
	}
	w.WriteUint32(d.Serial)
	w.WriteUint32(d.Refresh)
	w.WriteUint32(d.Retry)
	w.WriteUint32(d.Expire)
	w.WriteUint32(d.Minimum)
	return nil
}

func decodeSOA(r *cursor.Reader) (RData, error) {
	mname, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	rname, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	serial, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	refresh, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	retry, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	expire, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	minimum, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return SOAData{MName: mname, RName: rname, Serial: serial, Refresh: refresh, Retry: retry, Expire: expire, Minimum: minimum}, nil
}
