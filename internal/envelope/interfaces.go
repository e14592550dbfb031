package envelope

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_mock.go -package=mock

// EnvelopeCodec encodes secrets into cipher envelopes and decodes them back,
// choosing the decode path from the envelope generation.
type EnvelopeCodec interface {
	// Encode seals plaintext into a current-generation envelope without a
	// version line.
	Encode(plaintext, password []byte) (string, error)

	// EncodeWithVersion is Encode followed by a newline and the version line
	// of the running software.
	EncodeWithVersion(plaintext, password []byte) (string, error)

	// Decode parses a possibly multi-line envelope and opens it.
	Decode(text string, password []byte) ([]byte, error)

	// DecodeLines is Decode for an envelope already split into lines.
	DecodeLines(lines []string, password []byte) ([]byte, error)

	// DecodeText opens a single-line cipher written by software version ver.
	DecodeText(cipher string, password []byte, ver string) ([]byte, error)

	// Version returns the software version written into new version lines.
	Version() string
}
