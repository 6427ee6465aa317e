package wire

import "github.com/meridiandns/resolver/internal/dns/wire/cursor"

// DNS opcodes (RFC 1035 §4.1.1).
const (
	OpcodeQuery  uint8 = 0
	OpcodeIQuery uint8 = 1
	OpcodeStatus uint8 = 2
	OpcodeNotify uint8 = 4
	OpcodeUpdate uint8 = 5
)

// DNS response codes (RFC 1035 §4.1.1, RFC 2136 §2.3).
const (
	RcodeNoError  uint8 = 0
	RcodeFormErr  uint8 = 1
	RcodeServFail uint8 = 2
	RcodeNxDomain uint8 = 3
	RcodeNotImp   uint8 = 4
	RcodeRefused  uint8 = 5
)

// Header is the 12-octet preamble common to every DNS message. The on-wire
// flags word is decoded into named booleans and the opcode/rcode/Z octets;
// Flags exposes the raw word for callers that want it unmodified.
type Header struct {
	ID                  uint16
	Flags               uint16
	Response            bool
	Opcode              uint8
	AuthoritativeAnswer bool
	TruncatedMessage    bool
	RecursionDesired    bool
	RecursionAvailable  bool
	Z                   uint8 // reserved 3-bit field between RA and RCODE, must be zero per RFC 1035 §4.1.1
	ResCode             uint8

	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

func decodeHeader(r *cursor.Reader) (Header, error) {
	id, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	flags, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	qd, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	an, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	ns, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}
	ar, err := r.ReadUint16()
	if err != nil {
		return Header{}, err
	}

	h := Header{ID: id, Flags: flags, QDCount: qd, ANCount: an, NSCount: ns, ARCount: ar}
	h.Response = flags&(1<<15) != 0
	h.Opcode = uint8(flags>>11) & 0x0F // #nosec G115 -- masked to 4 bits
	h.AuthoritativeAnswer = flags&(1<<10) != 0
	h.TruncatedMessage = flags&(1<<9) != 0
	h.RecursionDesired = flags&(1<<8) != 0
	h.RecursionAvailable = flags&(1<<7) != 0
	h.Z = uint8(flags>>4) & 0x07 // #nosec G115 -- masked to 3 bits
	h.ResCode = uint8(flags & 0x0F) // #nosec G115 -- masked to 4 bits
	return h, nil
}

func (h Header) encode(w *cursor.Writer) {
	w.WriteUint16(h.ID)

	var flags uint16
	if h.Response {
		flags |= 1 << 15
	}
	flags |= uint16(h.Opcode) << 11
	if h.AuthoritativeAnswer {
		flags |= 1 << 10
	}
	if h.TruncatedMessage {
		flags |= 1 << 9
	}
	if h.RecursionDesired {
		flags |= 1 << 8
	}
	if h.RecursionAvailable {
		flags |= 1 << 7
	}
	flags |= uint16(h.Z&0x07) << 4
	flags |= uint16(h.ResCode)
	w.WriteUint16(flags)

	w.WriteUint16(h.QDCount)
	w.WriteUint16(h.ANCount)
	w.WriteUint16(h.NSCount)
	w.WriteUint16(h.ARCount)
}
