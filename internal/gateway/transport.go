package gateway

import "net/http"

// TokenSource yields the current session token at call time. The session
// store is the single writer; the gateway only ever reads through this
// interface so a request can never carry a stale copy.
type TokenSource interface {
	Token() (string, bool)
}

// StaticToken is a fixed TokenSource, used by tests and one-off scripts.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() (string, bool) {
	return string(s), s != ""
}

// TokenFunc adapts a plain function to a TokenSource. The wiring needs it
// because the session store and the client reference each other.
type TokenFunc func() (string, bool)

// Token implements TokenSource.
func (f TokenFunc) Token() (string, bool) {
	return f()
}

// authTransport attaches the bearer credential to every outgoing request
// when a token is present. When absent the request proceeds unauthenticated;
// the backend is the sole authority on whether that is permitted.
type authTransport struct {
	base   http.RoundTripper
	tokens TokenSource
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	if t.tokens != nil {
		if token, ok := t.tokens.Token(); ok {
			// RoundTrippers must not mutate the caller's request.
			clone := req.Clone(req.Context())
			clone.Header.Set("Authorization", "Bearer "+token)
			return base.RoundTrip(clone)
		}
	}

	return base.RoundTrip(req)
}
