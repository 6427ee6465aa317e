package edns

// EdeCode enumerates the INFO-CODE values of the Extended DNS Error option
// (RFC 8914 §4). EdeCodeUnknown is returned for any raw value outside the
// registered range; the raw value is still preserved on EDEOption.
type EdeCode int32

const (
	EdeCodeUnknown                    EdeCode = -1
	EdeCodeOther                      EdeCode = 0
	EdeCodeUnsupportedDNSKEYAlgorithm EdeCode = 1
	EdeCodeUnsupportedDSDigestType    EdeCode = 2
	EdeCodeStaleAnswer                EdeCode = 3
	EdeCodeForgedAnswer               EdeCode = 4
	EdeCodeDNSSECIndeterminate        EdeCode = 5
	EdeCodeDNSSECBogus                EdeCode = 6
	EdeCodeSignatureExpired           EdeCode = 7
	EdeCodeSignatureNotYetValid       EdeCode = 8
	EdeCodeDNSKEYMissing              EdeCode = 9
	EdeCodeRRSIGsMissing              EdeCode = 10
	EdeCodeNoZoneKeyBitSet            EdeCode = 11
	EdeCodeNSECMissing                EdeCode = 12
	EdeCodeCachedError                EdeCode = 13
	EdeCodeNotReady                   EdeCode = 14
	EdeCodeBlocked                    EdeCode = 15
	EdeCodeCensored                   EdeCode = 16
	EdeCodeFiltered                   EdeCode = 17
	EdeCodeProhibited                 EdeCode = 18
	EdeCodeStaleNXDOMAINAnswer        EdeCode = 19
	EdeCodeNotAuthoritative           EdeCode = 20
	EdeCodeNotSupported               EdeCode = 21
	EdeCodeNoReachableAuthority       EdeCode = 22
	EdeCodeNetworkError               EdeCode = 23
	EdeCodeInvalidData                EdeCode = 24
)

// EdeCodeFromRaw maps a raw INFO-CODE octet pair to its EdeCode, or
// EdeCodeUnknown when the value is outside the registered range.
func EdeCodeFromRaw(raw uint16) EdeCode {
	if raw > 24 {
		return EdeCodeUnknown
	}
	return EdeCode(raw)
}
