package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// DSData is the RDATA of a delegation-signer record (RFC 4034 §5).
type DSData struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

func (DSData) Type() Type { return TypeDS }
func (d DSData) String() string {
	return fmt.Sprintf("%d %d %d %x", d.KeyTag, d.Algorithm, d.DigestType, d.Digest)
}

func (d DSData) Encode(w *cursor.Writer) error {
	w.WriteUint16(d.KeyTag)
	w.WriteUint8(d.Algorithm)
	w.WriteUint8(d.DigestType)
	w.WriteBytes(d.Digest)
	return nil
}

func decodeDS(r *cursor.Reader, end int) (RData, error) {
	keyTag, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	algo, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	digestType, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	digest, err := r.ReadBytes(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return DSData{KeyTag: keyTag, Algorithm: algo, DigestType: digestType, Digest: digest}, nil
}

// SSHFPData is the RDATA of an SSH fingerprint record (RFC 4255).
type SSHFPData struct {
	Algorithm   uint8
	FPType      uint8
	Fingerprint []byte
}

func (SSHFPData) Type() Type { return TypeSSHFP }
func (d SSHFPData) String() string {
	return fmt.Sprintf("%d %d %x", d.Algorithm, d.FPType, d.Fingerprint)
}

func (d SSHFPData) Encode(w *cursor.Writer) error {
	w.WriteUint8(d.Algorithm)
	w.WriteUint8(d.FPType)
	w.WriteBytes(d.Fingerprint)
	return nil
}

func decodeSSHFP(r *cursor.Reader, end int) (RData, error) {
	algo, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	fpType, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	fp, err := r.ReadBytes(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return SSHFPData{Algorithm: algo, FPType: fpType, Fingerprint: fp}, nil
}

// RRSIGData is the RDATA of a DNSSEC signature record (RFC 4034 §3). The
// signature bytes are parsed but never cryptographically verified; that is
// the resolver's job, not the wire codec's.
type RRSIGData struct {
	TypeCovered uint16
	Algorithm   uint8
	Labels      uint8
	OrigTTL     uint32
	SigExpire   uint32
	SigInception uint32
	KeyTag      uint16
	SignerName  cursor.Name
	Signature   []byte
}

func (RRSIGData) Type() Type { return TypeRRSIG }
func (d RRSIGData) String() string {
	return fmt.Sprintf("%s %d %d %d %d %d %d %s %x", Type(d.TypeCovered), d.Algorithm, d.Labels, d.OrigTTL, d.SigExpire, d.SigInception, d.KeyTag, d.SignerName, d.Signature)
}

func (d RRSIGData) Encode(w *cursor.Writer) error {
	w.WriteUint16(d.TypeCovered)
	w.WriteUint8(d.Algorithm)
	w.WriteUint8(d.Labels)
	w.WriteUint32(d.OrigTTL)
	w.WriteUint32(d.SigExpire)
	w.WriteUint32(d.SigInception)
	w.WriteUint16(d.KeyTag)
	if err := w.WriteName(d.SignerName); err != nil {
		return err
	}
	w.WriteBytes(d.Signature)
	return nil
}

func decodeRRSIG(r *cursor.Reader, end int) (RData, error) {
	typeCovered, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	algo, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	labels, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	origTTL, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	sigExpire, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	sigInception, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	keyTag, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	signer, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	sig, err := r.ReadBytes(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return RRSIGData{
		TypeCovered: typeCovered, Algorithm: algo, Labels: labels, OrigTTL: origTTL,
		SigExpire: sigExpire, SigInception: sigInception, KeyTag: keyTag,
		SignerName: signer, Signature: sig,
	}, nil
}

// NSECData is the RDATA of a next-secure record (RFC 4034 §4).
type NSECData struct {
	NextName    cursor.Name
	TypeBitMaps []byte
}

func (NSECData) Type() Type { return TypeNSEC }
func (d NSECData) String() string {
	return fmt.Sprintf("%s %x", d.NextName, d.TypeBitMaps)
}

func (d NSECData) Encode(w *cursor.Writer) error {
	if err := w.WriteName(d.NextName); err != nil {
		return err
	}
	w.WriteBytes(d.TypeBitMaps)
	return nil
}

func decodeNSEC(r *cursor.Reader, end int) (RData, error) {
	next, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	bitmaps, err := r.ReadBytes(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return NSECData{NextName: next, TypeBitMaps: bitmaps}, nil
}

// DNSKEYData is the RDATA of a DNS public-key record (RFC 4034 §2).
type DNSKEYData struct {
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	PublicKey []byte
}

func (DNSKEYData) Type() Type { return TypeDNSKEY }
func (d DNSKEYData) String() string {
	return fmt.Sprintf("%d %d %d %x", d.Flags, d.Protocol, d.Algorithm, d.PublicKey)
}

func (d DNSKEYData) Encode(w *cursor.Writer) error {
	w.WriteUint16(d.Flags)
	w.WriteUint8(d.Protocol)
	w.WriteUint8(d.Algorithm)
	w.WriteBytes(d.PublicKey)
	return nil
}

func decodeDNSKEY(r *cursor.Reader, end int) (RData, error) {
	flags, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	proto, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	algo, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	pubkey, err := r.ReadBytes(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return DNSKEYData{Flags: flags, Protocol: proto, Algorithm: algo, PublicKey: pubkey}, nil
}

// NSEC3Data is the RDATA of an NSEC3 record (RFC 5155 §3). Salt and
// NextOwner are each length-prefixed by a single octet internal to RDATA,
// not by RDLENGTH.
type NSEC3Data struct {
	HashAlgorithm uint8
	Flags         uint8
	Iterations    uint16
	Salt          []byte
	NextOwner     []byte
	TypeBitMaps   []byte
}

func (NSEC3Data) Type() Type { return TypeNSEC3 }
func (d NSEC3Data) String() string {
	return fmt.Sprintf("%d %d %d %x %x %x", d.HashAlgorithm, d.Flags, d.Iterations, d.Salt, d.NextOwner, d.TypeBitMaps)
}

func (d NSEC3Data) Encode(w *cursor.Writer) error {
	w.WriteUint8(d.HashAlgorithm)
	w.WriteUint8(d.Flags)
	w.WriteUint16(d.Iterations)
	w.WriteUint8(uint8(len(d.Salt))) // #nosec G115 -- salt length bounded to 255 by the octet it is written into
	w.WriteBytes(d.Salt)
	w.WriteUint8(uint8(len(d.NextOwner))) // #nosec G115
	w.WriteBytes(d.NextOwner)
	w.WriteBytes(d.TypeBitMaps)
	return nil
}

func decodeNSEC3(r *cursor.Reader, end int) (RData, error) {
	hashAlgo, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	flags, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	iterations, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	saltLen, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	salt, err := r.ReadBytes(int(saltLen))
	if err != nil {
		return nil, err
	}
	hashLen, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	nextOwner, err := r.ReadBytes(int(hashLen))
	if err != nil {
		return nil, err
	}
	bitmaps, err := r.ReadBytes(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return NSEC3Data{
		HashAlgorithm: hashAlgo, Flags: flags, Iterations: iterations,
		Salt: salt, NextOwner: nextOwner, TypeBitMaps: bitmaps,
	}, nil
}

// NSEC3PARAMData is the RDATA of an NSEC3 parameters record (RFC 5155 §4).
type NSEC3PARAMData struct {
	HashAlgorithm uint8
	Flags         uint8
	Iterations    uint16
	Salt          []byte
}

func (NSEC3PARAMData) Type() Type { return TypeNSEC3PARAM }
func (d NSEC3PARAMData) String() string {
	return fmt.Sprintf("%d %d %d %x", d.HashAlgorithm, d.Flags, d.Iterations, d.Salt)
}

func (d NSEC3PARAMData) Encode(w *cursor.Writer) error {
	w.WriteUint8(d.HashAlgorithm)
	w.WriteUint8(d.Flags)
	w.WriteUint16(d.Iterations)
	w.WriteUint8(uint8(len(d.Salt))) // #nosec G115
	w.WriteBytes(d.Salt)
	return nil
}

func decodeNSEC3PARAM(r *cursor.Reader) (RData, error) {
	hashAlgo, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	flags, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	iterations, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	saltLen, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	salt, err := r.ReadBytes(int(saltLen))
	if err != nil {
		return nil, err
	}
	return NSEC3PARAMData{HashAlgorithm: hashAlgo, Flags: flags, Iterations: iterations, Salt: salt}, nil
}

// TLSAData is the RDATA of a DANE TLSA record (RFC 6698).
type TLSAData struct {
	Usage        uint8
	Selector     uint8
	MatchingType uint8
	AssocData    []byte
}

func (TLSAData) Type() Type { return TypeTLSA }
func (d TLSAData) String() string {
	return fmt.Sprintf("%d %d %d %x", d.Usage, d.Selector, d.MatchingType, d.AssocData)
}

func (d TLSAData) Encode(w *cursor.Writer) error {
	w.WriteUint8(d.Usage)
	w.WriteUint8(d.Selector)
	w.WriteUint8(d.MatchingType)
	w.WriteBytes(d.AssocData)
	return nil
}

func decodeTLSA(r *cursor.Reader, end int) (RData, error) {
	usage, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	selector, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	matchType, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	assocData, err := r.ReadBytes(remaining(r, end))
	if err != nil {
		return nil, err
	}
	return TLSAData{Usage: usage, Selector: selector, MatchingType: matchType, AssocData: assocData}, nil
}
