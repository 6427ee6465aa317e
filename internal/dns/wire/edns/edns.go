// Package edns decodes the EDNS0 OPT pseudo-record's RDATA (RFC 6891 §6.1),
// a nested TLV sub-stream of {code:u16, length:u16, data} tuples. Recognized
// codes (NSID, EDE) get a typed Option; unrecognized codes have their
// payload bytes consumed from the cursor but are not retained in the
// decoded option list.
package edns

import (
	"unicode/utf8"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
	"github.com/meridiandns/resolver/internal/dns/wire/metrics"
)

// Code is an EDNS0 option code (RFC 6891 §6.1.2).
type Code uint16

const (
	CodeNSID Code = 3
	CodeEDE  Code = 15
)

// Option is a single decoded EDNS0 sub-option.
type Option struct {
	Code Code
	NSID *NSIDOption
	EDE  *EDEOption
}

// NSIDOption is the name-server identifier option (RFC 5001). UTF8 is the
// empty string when Data fails strict UTF-8 decoding; Data is always
// retained regardless.
type NSIDOption struct {
	Data []byte
	UTF8 string
}

// EDEOption is the extended DNS error option (RFC 8914). ExtraText is empty
// when length <= 2 (no text present) or when the trailing bytes fail strict
// UTF-8 decoding.
type EDEOption struct {
	RawInfoCode uint16
	InfoCode    EdeCode
	ExtraText   string
}

// DecodeOptions walks the OPT RDATA from the reader's current position
// until end, returning every recognized sub-option in wire order. The
// cursor always lands exactly at end: unrecognized codes are skipped
// forward by their declared length.
func DecodeOptions(r *cursor.Reader, end int) ([]Option, error) {
	var opts []Option
	for r.Index() < end {
		code, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		length, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		data, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		switch Code(code) {
		case CodeNSID:
			opts = append(opts, Option{Code: CodeNSID, NSID: decodeNSID(data)})
		case CodeEDE:
			ede, err := decodeEDE(data)
			if err != nil {
				return nil, err
			}
			opts = append(opts, Option{Code: CodeEDE, EDE: ede})
		default:
			// Unknown option: skip forward, nothing retained.
			metrics.OptUnknownOptionTotal.Inc()
		}
	}
	return opts, nil
}

func decodeNSID(data []byte) *NSIDOption {
	opt := &NSIDOption{Data: data}
	if utf8.Valid(data) {
		opt.UTF8 = string(data)
	}
	return opt
}

func decodeEDE(data []byte) (*EDEOption, error) {
	r := cursor.NewReader(data)
	infoCode, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	opt := &EDEOption{RawInfoCode: infoCode, InfoCode: EdeCodeFromRaw(infoCode)}
	if len(data) > 2 {
		text, err := r.ReadBytes(len(data) - 2)
		if err != nil {
			return nil, err
		}
		if utf8.Valid(text) {
			opt.ExtraText = string(text)
		}
	}
	return opt, nil
}
