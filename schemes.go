package requestconf

// Well-known auth scheme names for use in the preferred scheme lists.
const (
	AuthSchemeBasic     = "Basic"
	AuthSchemeDigest    = "Digest"
	AuthSchemeBearer    = "Bearer"
	AuthSchemeNTLM      = "NTLM"
	AuthSchemeNegotiate = "Negotiate"
)

// Well-known cookie policy names for SetCookieSpec.
const (
	// CookieSpecStrict applies the cookie specification to the letter.
	CookieSpecStrict = "strict"
	// CookieSpecRelaxed tolerates common deviations seen in the wild.
	CookieSpecRelaxed = "relaxed"
	// CookieSpecIgnore disables cookie handling entirely.
	CookieSpecIgnore = "ignore"
)
