// Package wire is the top-level DNS message codec: it parses the 12-octet
// header, then the question, answer, authority, and additional sections,
// and emits the symmetric outbound query envelope. Socket I/O, resolver
// policy, and DNSSEC signature verification are all out of scope; this
// package is a pure function from bytes to a structured message and back.
package wire

import (
	"errors"
	"fmt"
	"time"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
	"github.com/meridiandns/resolver/internal/dns/wire/metrics"
	"github.com/meridiandns/resolver/internal/dns/wire/rr"
)

// Question is a single entry in a message's question section.
type Question struct {
	Name   cursor.Name
	QType  rr.Type
	QClass uint16
}

func decodeQuestion(r *cursor.Reader) (Question, error) {
	name, err := r.ReadName()
	if err != nil {
		return Question{}, fmt.Errorf("question name: %w", err)
	}
	qtype, err := r.ReadUint16()
	if err != nil {
		return Question{}, fmt.Errorf("question qtype: %w", err)
	}
	qclass, err := r.ReadUint16()
	if err != nil {
		return Question{}, fmt.Errorf("question qclass: %w", err)
	}
	return Question{Name: name, QType: rr.Type(qtype), QClass: qclass}, nil
}

func (q Question) encode(w *cursor.Writer) error {
	if err := w.WriteName(q.Name); err != nil {
		return err
	}
	w.WriteUint16(uint16(q.QType))
	w.WriteUint16(q.QClass)
	return nil
}

// Message is a fully decoded DNS message: header plus its four sections.
// Section counts in Header always equal the number of records actually
// decoded into the corresponding slice.
type Message struct {
	Header      Header
	Questions   []Question
	Answers     []rr.Record
	Authorities []rr.Record
	Additionals []rr.Record

	// TrailingBytes is the count of bytes left in the buffer once every
	// declared record has been decoded. Non-zero is not an error — only
	// noted for diagnostics, per the decode pipeline's trailing-data step.
	TrailingBytes int
}

// DecodeOptions tunes DecodeMessage's tolerance for malformed records.
type DecodeOptions struct {
	// Lenient, when true, converts a record that fails type-specific
	// decode or RDLENGTH sanitization into rr.UnknownData instead of
	// aborting the whole message. A record whose declared RDLENGTH
	// overruns the buffer is never recoverable regardless of this flag.
	Lenient bool
}

// DecodeMessage parses a complete DNS message out of buf.
func DecodeMessage(buf []byte, opts DecodeOptions) (*Message, error) {
	start := time.Now()
	msg, err := decodeMessage(buf, opts)
	metrics.DecodeDuration.Observe(time.Since(start).Seconds())
	metrics.DecodeTotal.WithLabelValues(decodeResultLabel(err)).Inc()
	return msg, err
}

func decodeMessage(buf []byte, opts DecodeOptions) (*Message, error) {
	r := cursor.NewReader(buf)

	header, err := decodeHeader(r)
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	msg := &Message{Header: header}

	for i := 0; i < int(header.QDCount); i++ {
		q, err := decodeQuestion(r)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		msg.Questions = append(msg.Questions, q)
	}

	msg.Answers, err = decodeRecords(r, int(header.ANCount), opts.Lenient)
	if err != nil {
		return nil, fmt.Errorf("answer section: %w", err)
	}
	msg.Authorities, err = decodeRecords(r, int(header.NSCount), opts.Lenient)
	if err != nil {
		return nil, fmt.Errorf("authority section: %w", err)
	}
	msg.Additionals, err = decodeRecords(r, int(header.ARCount), opts.Lenient)
	if err != nil {
		return nil, fmt.Errorf("additional section: %w", err)
	}

	msg.TrailingBytes = r.Remaining()
	return msg, nil
}

// decodeResultLabel maps a decode error to the "result" label used by
// metrics.DecodeTotal, matching the error taxonomy in cursor/errors.go.
func decodeResultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, cursor.ErrTruncated):
		return "truncated"
	case errors.Is(err, cursor.ErrMalformed):
		return "malformed"
	case errors.Is(err, cursor.ErrInvalidUTF8):
		return "invalid_utf8"
	default:
		return "error"
	}
}

func decodeRecords(r *cursor.Reader, count int, lenient bool) ([]rr.Record, error) {
	records := make([]rr.Record, 0, count)
	for i := 0; i < count; i++ {
		record, err := rr.Decode(r, lenient)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// EncodeQuery builds a complete outbound query message: the header fields
// supplied verbatim except for Response (always false), QDCount (always 1)
// and the other three section counts (always 0), followed by the single
// question. The flags word is built from the named flag fields; the raw
// Flags field is not written. Names are written uncompressed, a conforming
// but non-optimal choice.
func EncodeQuery(header Header, question Question) ([]byte, error) {
	header.Response = false
	header.QDCount = 1
	header.ANCount = 0
	header.NSCount = 0
	header.ARCount = 0

	w := cursor.NewWriter()
	header.encode(w)
	if err := question.encode(w); err != nil {
		return nil, fmt.Errorf("question: %w", err)
	}
	return w.Bytes(), nil
}
