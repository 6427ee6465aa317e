package rr

import (
	"fmt"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

// CERTData is the RDATA of a certificate record (RFC 4398).
type CERTData struct {
	CertType  uint16
	KeyTag    uint16
	Algorithm uint8
	PublicKey []byte
}

func (CERTData) Type() Type { return TypeCERT }
func (d CERTData) String() string {
	return fmt.Sprintf("%d %d %d %x", d.CertType, d.KeyTag, d.Algorithm, d.PublicKey)
}

func (d CERTData) Encode(w *cursor.Writer) error {
	w.WriteUint16(d.CertType)
	w.WriteUint16(d.KeyTag)
	w.WriteUint8(d.Algorithm)
	w.WriteBytes(d.PublicKey)
	return nil
}

func decodeCERT(r *cursor.Reader, end int) (RData, error) {
	certType, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	keyTag, err := r.ReadUint16()
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
	return CERTData{CertType: certType, KeyTag: keyTag, Algorithm: algo, PublicKey: pubkey}, nil
}
