package edns

import (
	"testing"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// TestDecodeOptionsNSIDAndEDE decodes OPT RDATA containing an NSID
// option followed by an EDE option.
func TestDecodeOptionsNSIDAndEDE(t *testing.T) {
	buf := []byte{
		0x00, 0x03, 0x00, 0x04, 'a', 'b', 'c', 'd', // NSID, length 4, "abcd"
		0x00, 0x0F, 0x00, 0x06, 0x00, 0x06, 'H', 'e', 'l', 'l', 'o', // EDE, length 6, info_code=6, "Hello"
	}
	r := cursor.NewReader(buf)
	opts, err := DecodeOptions(r, len(buf))
	if err != nil {
		t.Fatalf("DecodeOptions: %v", err)
	}
	if len(opts) != 2 {
		t.Fatalf("got %d options, want 2", len(opts))
	}

	nsid := opts[0]
	if nsid.Code != CodeNSID || nsid.NSID == nil {
		t.Fatalf("first option = %+v, want NSID", nsid)
	}
	if string(nsid.NSID.Data) != "abcd" || nsid.NSID.UTF8 != "abcd" {
		t.Errorf("NSID = %+v, want data/utf8 \"abcd\"", nsid.NSID)
	}

	ede := opts[1]
	if ede.Code != CodeEDE || ede.EDE == nil {
		t.Fatalf("second option = %+v, want EDE", ede)
	}
	if ede.EDE.RawInfoCode != 6 {
		t.Errorf("RawInfoCode = %d, want 6", ede.EDE.RawInfoCode)
	}
	if ede.EDE.InfoCode != EdeCodeDNSSECBogus {
		t.Errorf("InfoCode = %v, want EdeCodeDNSSECBogus", ede.EDE.InfoCode)
	}
	if ede.EDE.ExtraText != "Hello" {
		t.Errorf("ExtraText = %q, want \"Hello\"", ede.EDE.ExtraText)
	}
	if r.Index() != len(buf) {
		t.Errorf("cursor at %d, want %d (exactly RDLENGTH consumed)", r.Index(), len(buf))
	}
}

// TestDecodeOptionsUnknownCodeSkipped checks that an unknown option code
// is skipped forward and a following NSID option still decodes.
func TestDecodeOptionsUnknownCodeSkipped(t *testing.T) {
	buf := []byte{
		0x00, 0x63, 0x00, 0x02, 0xDE, 0xAD, // unknown code 0x63, length 2
		0x00, 0x03, 0x00, 0x00, // NSID, length 0
	}
	r := cursor.NewReader(buf)
	opts, err := DecodeOptions(r, len(buf))
	if err != nil {
		t.Fatalf("DecodeOptions: %v", err)
	}
	if len(opts) != 1 {
		t.Fatalf("got %d options, want 1 (unknown code discarded)", len(opts))
	}
	if opts[0].Code != CodeNSID || opts[0].NSID == nil {
		t.Fatalf("only option = %+v, want NSID", opts[0])
	}
	if len(opts[0].NSID.Data) != 0 {
		t.Errorf("NSID data len = %d, want 0", len(opts[0].NSID.Data))
	}
	if r.Index() != len(buf) {
		t.Errorf("cursor at %d, want %d", r.Index(), len(buf))
	}
}

func TestNSIDInvalidUTF8LeavesEmptyView(t *testing.T) {
	data := []byte{0xFF, 0xFE, 0xFD}
	opt := decodeNSID(data)
	if opt.UTF8 != "" {
		t.Errorf("UTF8 = %q, want empty for invalid UTF-8 input", opt.UTF8)
	}
	if string(opt.Data) != string(data) {
		t.Errorf("Data = %v, want %v (raw bytes always retained)", opt.Data, data)
	}
}

func TestEdeCodeFromRawUnknown(t *testing.T) {
	if got := EdeCodeFromRaw(9999); got != EdeCodeUnknown {
		t.Errorf("EdeCodeFromRaw(9999) = %v, want EdeCodeUnknown", got)
	}
	if got := EdeCodeFromRaw(0); got != EdeCodeOther {
		t.Errorf("EdeCodeFromRaw(0) = %v, want EdeCodeOther", got)
	}
}
