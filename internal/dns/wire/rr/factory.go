package rr

import (
	"fmt"
	"strconv"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
	"github.com/meridiandns/resolver/internal/dns/wire/metrics"
)

// Decode reads one resource record starting at the reader's current
// position: name, type, class, ttl, rdlength, then dispatches to the
// type-specific RDATA decoder and checks that it consumed exactly
// RDLENGTH octets (cursor.Reader.Sanitize).
//
// If lenient is false, any decode or sanitize error aborts immediately and
// is returned to the caller. If lenient is true, a malformed record
// (including an RDLENGTH mismatch) is instead replaced with UnknownData
// and the cursor is force-advanced past its declared RDATA region so the
// caller can continue decoding subsequent records; a record whose
// RDLENGTH itself overruns the buffer is never recoverable and always
// aborts, since there is nowhere valid to resynchronize to.
func Decode(r *cursor.Reader, lenient bool) (Record, error) {
	name, err := r.ReadName()
	if err != nil {
		return Record{}, fmt.Errorf("record name: %w", err)
	}
	rawType, err := r.ReadUint16()
	if err != nil {
		return Record{}, fmt.Errorf("record type: %w", err)
	}
	class, err := r.ReadUint16()
	if err != nil {
		return Record{}, fmt.Errorf("record class: %w", err)
	}
	ttl, err := r.ReadUint32()
	if err != nil {
		return Record{}, fmt.Errorf("record ttl: %w", err)
	}
	rdlength, err := r.ReadUint16()
	if err != nil {
		return Record{}, fmt.Errorf("record rdlength: %w", err)
	}

	typ := Type(rawType)
	header := Header{Name: name, Type: typ, Class: class, TTL: ttl, RDLength: rdlength}

	start := r.Index()
	end := start + int(rdlength)
	if end > r.Len() {
		return Record{}, fmt.Errorf("%w: rdlength %d at index %d overruns buffer of length %d", cursor.ErrTruncated, rdlength, start, r.Len())
	}

	data, decodeErr := decodeRData(typ, r, end)
	if decodeErr == nil {
		decodeErr = r.Sanitize(end, typ == TypeOPT)
	}
	if decodeErr == nil {
		return Record{Header: header, Data: data}, nil
	}

	if !lenient {
		return Record{}, decodeErr
	}

	r.ForceAdvanceTo(end)
	raw, rawErr := r.BytesAt(start, int(rdlength))
	if rawErr != nil {
		return Record{}, rawErr
	}
	metrics.UnknownRecordTotal.WithLabelValues(strconv.Itoa(int(typ))).Inc()
	return Record{Header: header, Data: UnknownData{RRType: typ, Raw: raw}}, nil
}

// decodeRData dispatches on typ per the record catalog. end is the
// absolute cursor position one past the last RDATA octet
// (start + rdlength); decoders whose layout is "bytes to end" (DS,
// RRSIG, NSEC, ... ) use it to size their trailing byte slice. A record
// type not in the catalog decodes to UnknownData holding rdlength raw
// octets, never an error.
func decodeRData(typ Type, r *cursor.Reader, end int) (RData, error) {
	switch typ {
	case TypeA:
		return decodeA(r)
	case TypeAAAA:
		return decodeAAAA(r)
	case TypeNS, TypeCNAME, TypePTR, TypeMD, TypeMF, TypeMB, TypeMG, TypeMR:
		return decodeName(typ, r)
	case TypeMX:
		return decodeMX(r)
	case TypeTXT, TypeSPF:
		return decodeTXT(typ, r, end)
	case TypeSOA:
		return decodeSOA(r)
	case TypeHINFO:
		return decodeHINFO(r)
	case TypeMINFO:
		return decodeMINFO(r)
	case TypeRP:
		return decodeRP(r)
	case TypeAFSDB:
		return decodeAFSDB(r)
	case TypeWKS:
		return decodeWKS(r, end)
	case TypeNULL:
		return decodeNULL(r, end)
	case TypeSRV:
		return decodeSRV(r)
	case TypeNAPTR:
		return decodeNAPTR(r)
	case TypeCERT:
		return decodeCERT(r, end)
	case TypeURI:
		return decodeURI(r, end)
	case TypeCAA:
		return decodeCAA(r, end)
	case TypeDS:
		return decodeDS(r, end)
	case TypeSSHFP:
		return decodeSSHFP(r, end)
	case TypeRRSIG:
		return decodeRRSIG(r, end)
	case TypeNSEC:
		return decodeNSEC(r, end)
	case TypeDNSKEY:
		return decodeDNSKEY(r, end)
	case TypeNSEC3:
		return decodeNSEC3(r, end)
	case TypeNSEC3PARAM:
		return decodeNSEC3PARAM(r)
	case TypeTLSA:
		return decodeTLSA(r, end)
	case TypeOPT:
		return decodeOPT(r, end)
	default:
		raw, err := r.ReadBytes(end - r.Index())
		if err != nil {
			return nil, err
		}
		metrics.UnknownRecordTotal.WithLabelValues(strconv.Itoa(int(typ))).Inc()
		return UnknownData{RRType: typ, Raw: raw}, nil
	}
}

func remaining(r *cursor.Reader, end int) int {
	return end - r.Index()
}
