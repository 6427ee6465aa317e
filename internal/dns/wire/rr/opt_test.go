package rr

import (
	"testing"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// TestOPTRecordAccessors exercises the OPT field overloading design note:
// CLASS carries the UDP payload size, TTL packs extended RCODE/version/DO.
func TestOPTRecordAccessors(t *testing.T) {
	buf := []byte{
		0x00,       // root name
		0x00, 0x29, // type OPT (41)
		0x10, 0x00, // class: UDP payload size 4096
		0x01, 0x00, 0x80, 0x00, // ttl: extended rcode=1, version=0, DO bit set
		0x00, 0x00, // rdlength 0
	}
	r := cursor.NewReader(buf)
	rec, err := Decode(r, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rec.UDPPayloadSize() != 4096 {
		t.Errorf("UDPPayloadSize = %d, want 4096", rec.UDPPayloadSize())
	}
	if rec.ExtendedRcode() != 1 {
		t.Errorf("ExtendedRcode = %d, want 1", rec.ExtendedRcode())
	}
	if rec.Version() != 0 {
		t.Errorf("Version = %d, want 0", rec.Version())
	}
	if !rec.DNSSECOk() {
		t.Error("DNSSECOk = false, want true")
	}
}

func TestOPTRecordWithSubOptions(t *testing.T) {
	buf := []byte{
		0x00,       // root name
		0x00, 0x29, // type OPT
		0x10, 0x00, // class: UDP payload size
		0x00, 0x00, 0x00, 0x00, // ttl
		0x00, 0x08, // rdlength 8: one NSID option (4-octet header + 4-byte data)
		0x00, 0x03, 0x00, 0x04, 'a', 'b', 'c', 'd',
	}
	rec, err := Decode(cursor.NewReader(buf), false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	opt, ok := rec.Data.(OPTData)
	if !ok {
		t.Fatalf("data is %T, want OPTData", rec.Data)
	}
	if len(opt.Options) != 1 || opt.Options[0].NSID == nil {
		t.Fatalf("options = %+v, want one NSID option", opt.Options)
	}
	if string(opt.Options[0].NSID.Data) != "abcd" {
		t.Errorf("NSID data = %q, want \"abcd\"", opt.Options[0].NSID.Data)
	}
}
