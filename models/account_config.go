package models

import "time"

// AccountConfig is a persisted account configuration.
//
// Envelope holds the encrypted configuration text (cipher line followed by a
// version line). The plaintext never touches the database.
type AccountConfig struct {
	ShortName string
	IssuerURL string
	Envelope  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Identity returns the logical identity of the configured account.
func (c AccountConfig) Identity() Identity {
	return Identity{ShortName: c.ShortName, IssuerURL: c.IssuerURL}
}

// AccountSecrets is the decrypted content of an [AccountConfig] envelope.
// The holder owns the buffers and must call [AccountSecrets.Wipe] or hand
// them over to an [Account].
type AccountSecrets struct {
	AccessToken  SecretBytes `json:"access_token,omitempty"`
	RefreshToken SecretBytes `json:"refresh_token"`
	ClientID     SecretBytes `json:"client_id"`
	ClientSecret SecretBytes `json:"client_secret"`
}

// MarshalJSON implements [json.Marshaler]. Callers that must wipe the output
// call it directly: going through [json.Marshal] leaves a copy in the
// encoder's pooled buffer.
func (s AccountSecrets) MarshalJSON() ([]byte, error) {
	fields := []struct {
		key       string
		value     SecretBytes
		omitEmpty bool
	}{
		{"access_token", s.AccessToken, true},
		{"refresh_token", s.RefreshToken, false},
		{"client_id", s.ClientID, false},
		{"client_secret", s.ClientSecret, false},
	}

	size := 2
	for _, f := range fields {
		size += len(f.key) + 4 + quotedCap(f.value)
	}

	out := make([]byte, 0, size)
	out = append(out, '{')
	for _, f := range fields {
		if f.omitEmpty && len(f.value) == 0 {
			continue
		}
		if len(out) > 1 {
			out = append(out, ',')
		}
		out = append(out, '"')
		out = append(out, f.key...)
		out = append(out, '"', ':')
		out = appendSecret(out, f.value)
	}
	return append(out, '}'), nil
}

// IsEmpty reports whether no secret is set.
func (s AccountSecrets) IsEmpty() bool {
	return len(s.AccessToken) == 0 && len(s.RefreshToken) == 0 &&
		len(s.ClientID) == 0 && len(s.ClientSecret) == 0
}

// Wipe zeroes all four secrets.
func (s AccountSecrets) Wipe() {
	s.AccessToken.Wipe()
	s.RefreshToken.Wipe()
	s.ClientID.Wipe()
	s.ClientSecret.Wipe()
}
