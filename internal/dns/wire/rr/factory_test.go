package rr

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// encodeRecord builds the wire bytes for a record from its header fields
// and RDATA, mirroring what RecordFactory.Decode expects to read back.
func encodeRecord(t *testing.T, header Header, data RData) []byte {
	t.Helper()
	header.Type = data.Type()
	rec := Record{Header: header, Data: data}
	w := cursor.NewWriter()
	require.NoError(t, rec.Encode(w))
	return w.Bytes()
}

func TestRecordCatalogRoundTrip(t *testing.T) {
	baseHeader := Header{Name: cursor.ParseName("example.com."), Class: 1, TTL: 300}

	cases := []struct {
		name string
		data RData
	}{
		{"A", AData{Address: net.ParseIP("192.0.2.1").To4()}},
		{"AAAA", AAAAData{Address: net.ParseIP("2001:db8::1")}},
		{"NS", NameData{RRType: TypeNS, Name: cursor.ParseName("ns1.example.com.")}},
		{"CNAME", NameData{RRType: TypeCNAME, Name: cursor.ParseName("alias.example.com.")}},
		{"SOA", SOAData{
			MName: cursor.ParseName("ns1.example.com."), RName: cursor.ParseName("hostmaster.example.com."),
			Serial: 2024010100, Refresh: 3600, Retry: 600, Expire: 604800, Minimum: 86400,
		}},
		{"MX", MXData{Preference: 10, Exchange: cursor.ParseName("mail.example.com.")}},
		{"TXT", TXTData{RRType: TypeTXT, Strings: [][]byte{[]byte("v=spf1"), []byte("")}, UTF8: []string{"v=spf1", ""}}},
		{"HINFO", HINFOData{CPU: cursor.CharacterString{Raw: []byte("INTEL"), Escaped: "INTEL"}, OS: cursor.CharacterString{Raw: []byte("LINUX"), Escaped: "LINUX"}}},
		{"MINFO", MINFOData{RMailBX: cursor.ParseName("rm.example.com."), EMailBX: cursor.ParseName("em.example.com.")}},
		{"RP", RPData{Mbox: cursor.ParseName("admin.example.com."), TXT: cursor.ParseName("txt.example.com.")}},
		{"AFSDB", AFSDBData{Subtype: 1, Hostname: cursor.ParseName("afs.example.com.")}},
		{"SRV", SRVData{Priority: 1, Weight: 2, Port: 443, Target: cursor.ParseName("svc.example.com.")}},
		{"NAPTR", NAPTRData{
			Order: 100, Preference: 10,
			Flags:    cursor.CharacterString{Raw: []byte("S"), Escaped: "S"},
			Services: cursor.CharacterString{Raw: []byte("SIP+D2U"), Escaped: "SIP+D2U"},
			Regexp:   cursor.CharacterString{Raw: []byte(""), Escaped: ""},
			Replacement: cursor.ParseName("_sip._udp.example.com."),
		}},
		{"CERT", CERTData{CertType: 1, KeyTag: 1234, Algorithm: 5, PublicKey: []byte{0xDE, 0xAD, 0xBE, 0xEF}}},
		{"URI", URIData{Priority: 1, Weight: 1, Target: "https://example.com/"}},
		{"CAA", CAAData{Flags: 0, Tag: cursor.CharacterString{Raw: []byte("issue"), Escaped: "issue"}, Value: []byte("letsencrypt.org")}},
		{"DS", DSData{KeyTag: 1, Algorithm: 8, DigestType: 2, Digest: make([]byte, 32)}},
		{"SSHFP", SSHFPData{Algorithm: 1, FPType: 1, Fingerprint: make([]byte, 20)}},
		{"NSEC", NSECData{NextName: cursor.ParseName("next.example.com."), TypeBitMaps: []byte{0x00, 0x06, 0x40, 0x01, 0x00, 0x00, 0x00, 0x08}}},
		{"DNSKEY", DNSKEYData{Flags: 256, Protocol: 3, Algorithm: 8, PublicKey: []byte{0x01, 0x02, 0x03}}},
		{"NSEC3PARAM", NSEC3PARAMData{HashAlgorithm: 1, Flags: 0, Iterations: 10, Salt: []byte{0xAA, 0xBB}}},
		{"NSEC3", NSEC3Data{
			HashAlgorithm: 1, Flags: 0, Iterations: 10, Salt: []byte{0xAA},
			NextOwner: []byte{1, 2, 3, 4}, TypeBitMaps: []byte{0x00, 0x02, 0x40, 0x00},
		}},
		{"TLSA", TLSAData{Usage: 3, Selector: 1, MatchingType: 1, AssocData: make([]byte, 32)}},
		{"RRSIG", RRSIGData{
			TypeCovered: uint16(TypeA), Algorithm: 8, Labels: 2, OrigTTL: 3600,
			SigExpire: 1700000000, SigInception: 1690000000, KeyTag: 12345,
			SignerName: cursor.ParseName("example.com."), Signature: []byte{0x01, 0x02, 0x03, 0x04},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := encodeRecord(t, baseHeader, tc.data)
			r := cursor.NewReader(buf)
			rec, err := Decode(r, false)
			require.NoError(t, err)
			require.Equal(t, tc.data, rec.Data)
			require.Equal(t, r.Len(), r.Index(), "decode must consume the entire record")
		})
	}
}

// TestSampleFixtureA decodes a literal A-record response body
// byte-for-byte.
func TestSampleFixtureA(t *testing.T) {
	buf := []byte{
		0x05, 'q', 'u', 'e', 'r', 'y', 0x00, // name "query."
		0x00, 0x01, // type A
		0x00, 0x01, // class IN
		0x00, 0x00, 0x00, 0x64, // ttl 100
		0x00, 0x04, // rdlength 4
		0x7B, 0x2D, 0x43, 0x09, // 123.45.67.9
	}
	r := cursor.NewReader(buf)
	rec, err := Decode(r, false)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rec.Header.Name.String() != "query." {
		t.Errorf("name = %q, want \"query.\"", rec.Header.Name.String())
	}
	if rec.Header.TTL != 100 {
		t.Errorf("ttl = %d, want 100", rec.Header.TTL)
	}
	a, ok := rec.Data.(AData)
	if !ok {
		t.Fatalf("data is %T, want AData", rec.Data)
	}
	if a.Address.String() != "123.45.67.9" {
		t.Errorf("address = %s, want 123.45.67.9", a.Address)
	}
}

// TestRDLENGTHOverreadTruncated checks that an A record claiming
// rdlength=8 with only 4 octets actually available is rejected.
func TestRDLENGTHOverreadTruncated(t *testing.T) {
	buf := []byte{
		0x00,       // root name
		0x00, 0x01, // type A
		0x00, 0x01, // class IN
		0x00, 0x00, 0x00, 0x64,
		0x00, 0x08, // rdlength 8, but only 4 octets follow
		0x7B, 0x2D, 0x43, 0x09,
	}
	_, err := Decode(cursor.NewReader(buf), false)
	if err == nil {
		t.Fatal("expected an error for an RDLENGTH that overruns the buffer")
	}
}

// TestUnknownTypeTolerance checks that a never-seen rtype decodes to
// Unknown with the declared RDLENGTH worth of raw bytes, and does not
// disturb decoding of the record that follows.
func TestUnknownTypeTolerance(t *testing.T) {
	buf := []byte{
		0x00,       // root name
		0x27, 0x10, // rtype 10000 (unassigned)
		0x00, 0x01,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x03, // rdlength 3
		0xAA, 0xBB, 0xCC,
		// second record: A
		0x00,
		0x00, 0x01,
		0x00, 0x01,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x04,
		0x01, 0x02, 0x03, 0x04,
	}
	r := cursor.NewReader(buf)
	first, err := Decode(r, false)
	if err != nil {
		t.Fatalf("Decode first: %v", err)
	}
	unk, ok := first.Data.(UnknownData)
	if !ok {
		t.Fatalf("data is %T, want UnknownData", first.Data)
	}
	if len(unk.Raw) != 3 {
		t.Errorf("raw len = %d, want 3", len(unk.Raw))
	}

	second, err := Decode(r, false)
	if err != nil {
		t.Fatalf("Decode second: %v", err)
	}
	if _, ok := second.Data.(AData); !ok {
		t.Fatalf("second record decoded as %T, want AData", second.Data)
	}
}

// TestLenientFallbackOnMalformedRecord exercises the lenient path: an SOA
// record whose declared RDLENGTH is too short for its fixed-size fields
// becomes UnknownData instead of aborting the whole message.
func TestLenientFallbackOnMalformedRecord(t *testing.T) {
	buf := []byte{
		0x00,       // root name
		0x00, 0x06, // type SOA
		0x00, 0x01,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x0A, // rdlength 10: far too short for a well-formed SOA RDATA
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	rec, err := Decode(cursor.NewReader(buf), true)
	if err != nil {
		t.Fatalf("lenient Decode should not fail: %v", err)
	}
	unk, ok := rec.Data.(UnknownData)
	if !ok {
		t.Fatalf("data is %T, want UnknownData", rec.Data)
	}
	if len(unk.Raw) != 10 {
		t.Errorf("raw len = %d, want 10", len(unk.Raw))
	}

	if _, err := Decode(cursor.NewReader(buf), false); err == nil {
		t.Fatal("strict Decode should fail on the same malformed record")
	}
}
