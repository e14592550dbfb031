package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidShortName = errors.New("invalid account short name")
	ErrInvalidIssuerURL = errors.New("invalid issuer url")
	ErrEmptySecrets     = errors.New("at least one account secret is required")
)
