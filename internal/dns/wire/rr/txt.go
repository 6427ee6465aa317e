package rr

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/meridiandns/resolver/internal/dns/wire/cursor"
)

func malformedTXTOverread(end, at int) error {
	return fmt.Errorf("%w: TXT character-string overran RDLENGTH boundary %d at index %d", cursor.ErrMalformed, end, at)
}

// TXTData is the RDATA of a TXT (or SPF, rtype 99, parsed identically)
// record: a concatenation of length-prefixed character-strings whose total
// length equals RDLENGTH. Both an escaped-presentation view and a
// best-effort UTF-8 view are retained per string; a string whose raw bytes
// fail strict UTF-8 decoding contributes an empty entry to UTF8 rather than
// a lossily-replaced one.
type TXTData struct {
	RRType  Type
	Strings [][]byte
	UTF8    []string
}

func (d TXTData) Type() Type { return d.RRType }

func (d TXTData) String() string {
	escaped := make([]string, len(d.Strings))
	for i, s := range d.Strings {
		escaped[i] = `"` + cursor.EscapeString(s) + `"`
	}
	return strings.Join(escaped, " ")
}

func (d TXTData) Encode(w *cursor.Writer) error {
	for _, s := range d.Strings {
		w.WriteCharacterString(s)
	}
	return nil
}

func decodeTXT(typ Type, r *cursor.Reader, end int) (RData, error) {
	var strs [][]byte
	var utf8s []string
	for r.Index() < end {
		cs, err := r.ReadCharacterString()
		if err != nil {
			return nil, err
		}
		if r.Index() > end {
			return nil, malformedTXTOverread(end, r.Index())
		}
		strs = append(strs, cs.Raw)
		if utf8.Valid(cs.Raw) {
			utf8s = append(utf8s, string(cs.Raw))
		} else {
			utf8s = append(utf8s, "")
		}
	}
	return TXTData{RRType: typ, Strings: strs, UTF8: utf8s}, nil
}
