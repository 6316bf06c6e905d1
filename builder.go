package requestconf

import (
	"slices"
	"time"
)

// Defaults substituted by the builder when the corresponding field is never
// set. Zero remains a valid explicit value and means "wait forever".
const (
	DefaultConnectionRequestTimeout = 3 * time.Minute
	DefaultConnectTimeout           = 3 * time.Minute
	DefaultMaxRedirects             = 50
)

// Builder accumulates request options and produces an immutable
// RequestConfig via Build. Every setter returns the builder so calls can be
// chained:
//
//	cfg := requestconf.Custom().
//	    SetMaxRedirects(5).
//	    SetResponseTimeout(30 * time.Second).
//	    Build()
//
// A Builder is not safe for concurrent use; confine it to a single
// construction site and discard it after Build.
type Builder struct {
	expectContinueEnabled      bool
	proxy                      *Host
	cookieSpec                 string
	redirectsEnabled           bool
	circularRedirectsAllowed   bool
	maxRedirects               int
	authenticationEnabled      bool
	targetPreferredAuthSchemes []string
	proxyPreferredAuthSchemes  []string
	connectionRequestTimeout   *time.Duration
	connectTimeout             *time.Duration
	responseTimeout            *time.Duration
	contentCompressionEnabled  bool
	hardCancellationEnabled    bool
}

// Custom returns a fresh builder seeded with the default values documented
// on the RequestConfig accessors.
func Custom() *Builder {
	connectionRequestTimeout := DefaultConnectionRequestTimeout
	connectTimeout := DefaultConnectTimeout
	return &Builder{
		redirectsEnabled:          true,
		maxRedirects:              DefaultMaxRedirects,
		authenticationEnabled:     true,
		connectionRequestTimeout:  &connectionRequestTimeout,
		connectTimeout:            &connectTimeout,
		contentCompressionEnabled: true,
		hardCancellationEnabled:   true,
	}
}

// Copy returns a builder seeded field-by-field from an existing config, so a
// caller can override one option without re-specifying the rest.
func Copy(config *RequestConfig) *Builder {
	b := Custom().
		SetExpectContinueEnabled(config.ExpectContinueEnabled()).
		SetProxy(config.Proxy()).
		SetCookieSpec(config.CookieSpec()).
		SetRedirectsEnabled(config.RedirectsEnabled()).
		SetCircularRedirectsAllowed(config.CircularRedirectsAllowed()).
		SetMaxRedirects(config.MaxRedirects()).
		SetAuthenticationEnabled(config.AuthenticationEnabled()).
		SetTargetPreferredAuthSchemes(config.TargetPreferredAuthSchemes()).
		SetProxyPreferredAuthSchemes(config.ProxyPreferredAuthSchemes()).
		SetConnectionRequestTimeout(config.ConnectionRequestTimeout()).
		SetConnectTimeout(config.ConnectTimeout()).
		SetContentCompressionEnabled(config.ContentCompressionEnabled()).
		SetHardCancellationEnabled(config.HardCancellationEnabled())
	if d, ok := config.ResponseTimeout(); ok {
		b.SetResponseTimeout(d)
	}
	return b
}

// SetExpectContinueEnabled sets whether the 'Expect: 100-continue' handshake
// is used. See RequestConfig.ExpectContinueEnabled.
func (b *Builder) SetExpectContinueEnabled(enabled bool) *Builder {
	b.expectContinueEnabled = enabled
	return b
}

// SetProxy sets the explicit proxy for the request. Passing nil clears it.
// See RequestConfig.Proxy.
func (b *Builder) SetProxy(proxy *Host) *Builder {
	if proxy == nil {
		b.proxy = nil
		return b
	}
	h := *proxy
	b.proxy = &h
	return b
}

// SetCookieSpec sets the cookie policy name. See RequestConfig.CookieSpec.
func (b *Builder) SetCookieSpec(name string) *Builder {
	b.cookieSpec = name
	return b
}

// SetRedirectsEnabled sets whether redirects are followed automatically.
// See RequestConfig.RedirectsEnabled.
func (b *Builder) SetRedirectsEnabled(enabled bool) *Builder {
	b.redirectsEnabled = enabled
	return b
}

// SetCircularRedirectsAllowed sets whether a redirect chain may revisit a
// location. See RequestConfig.CircularRedirectsAllowed.
func (b *Builder) SetCircularRedirectsAllowed(allowed bool) *Builder {
	b.circularRedirectsAllowed = allowed
	return b
}

// SetMaxRedirects sets the redirect hop limit. The value is stored as given;
// interpreting out-of-range values is up to the redirect handler.
// See RequestConfig.MaxRedirects.
func (b *Builder) SetMaxRedirects(n int) *Builder {
	b.maxRedirects = n
	return b
}

// SetAuthenticationEnabled sets whether credentials are negotiated
// automatically. See RequestConfig.AuthenticationEnabled.
func (b *Builder) SetAuthenticationEnabled(enabled bool) *Builder {
	b.authenticationEnabled = enabled
	return b
}

// SetTargetPreferredAuthSchemes sets the auth scheme preference order for the
// target host. The slice is copied. See
// RequestConfig.TargetPreferredAuthSchemes.
func (b *Builder) SetTargetPreferredAuthSchemes(schemes []string) *Builder {
	b.targetPreferredAuthSchemes = slices.Clone(schemes)
	return b
}

// SetProxyPreferredAuthSchemes sets the auth scheme preference order for the
// proxy host. The slice is copied. See
// RequestConfig.ProxyPreferredAuthSchemes.
func (b *Builder) SetProxyPreferredAuthSchemes(schemes []string) *Builder {
	b.proxyPreferredAuthSchemes = slices.Clone(schemes)
	return b
}

// SetConnectionRequestTimeout sets the connection lease timeout. Zero means
// wait forever. See RequestConfig.ConnectionRequestTimeout.
func (b *Builder) SetConnectionRequestTimeout(d time.Duration) *Builder {
	b.connectionRequestTimeout = &d
	return b
}

// SetConnectionRequestTimeoutUnits is a convenience variant taking a
// magnitude and unit, e.g. SetConnectionRequestTimeoutUnits(3, time.Minute).
func (b *Builder) SetConnectionRequestTimeoutUnits(magnitude int64, unit time.Duration) *Builder {
	return b.SetConnectionRequestTimeout(time.Duration(magnitude) * unit)
}

// SetConnectTimeout sets the connection establishment timeout. Zero means
// wait forever. See RequestConfig.ConnectTimeout.
func (b *Builder) SetConnectTimeout(d time.Duration) *Builder {
	b.connectTimeout = &d
	return b
}

// SetConnectTimeoutUnits is a convenience variant taking a magnitude and
// unit, e.g. SetConnectTimeoutUnits(30, time.Second).
func (b *Builder) SetConnectTimeoutUnits(magnitude int64, unit time.Duration) *Builder {
	return b.SetConnectTimeout(time.Duration(magnitude) * unit)
}

// SetResponseTimeout sets the response arrival timeout. Unlike the
// connection timeouts it has no default; a config built without calling this
// setter reports the timeout as unset. See RequestConfig.ResponseTimeout.
func (b *Builder) SetResponseTimeout(d time.Duration) *Builder {
	b.responseTimeout = &d
	return b
}

// SetResponseTimeoutUnits is a convenience variant taking a magnitude and
// unit, e.g. SetResponseTimeoutUnits(500, time.Millisecond).
func (b *Builder) SetResponseTimeoutUnits(magnitude int64, unit time.Duration) *Builder {
	return b.SetResponseTimeout(time.Duration(magnitude) * unit)
}

// SetContentCompressionEnabled sets whether the server is asked to compress
// the response body. See RequestConfig.ContentCompressionEnabled.
func (b *Builder) SetContentCompressionEnabled(enabled bool) *Builder {
	b.contentCompressionEnabled = enabled
	return b
}

// SetHardCancellationEnabled sets whether cancellation kills the underlying
// connection. See RequestConfig.HardCancellationEnabled.
func (b *Builder) SetHardCancellationEnabled(enabled bool) *Builder {
	b.hardCancellationEnabled = enabled
	return b
}

// Build produces an immutable RequestConfig snapshot of the builder's
// current state. Building always succeeds; no field is validated.
//
// The connection request and connect timeouts fall back to their 3-minute
// defaults when still unset, so even a zero-value Builder yields a config
// honoring the documented timeout defaults.
func (b *Builder) Build() *RequestConfig {
	cfg := &RequestConfig{
		expectContinueEnabled:      b.expectContinueEnabled,
		cookieSpec:                 b.cookieSpec,
		redirectsEnabled:           b.redirectsEnabled,
		circularRedirectsAllowed:   b.circularRedirectsAllowed,
		maxRedirects:               b.maxRedirects,
		authenticationEnabled:      b.authenticationEnabled,
		targetPreferredAuthSchemes: slices.Clone(b.targetPreferredAuthSchemes),
		proxyPreferredAuthSchemes:  slices.Clone(b.proxyPreferredAuthSchemes),
		connectionRequestTimeout:   DefaultConnectionRequestTimeout,
		connectTimeout:             DefaultConnectTimeout,
		contentCompressionEnabled:  b.contentCompressionEnabled,
		hardCancellationEnabled:    b.hardCancellationEnabled,
	}
	if b.proxy != nil {
		h := *b.proxy
		cfg.proxy = &h
	}
	if b.connectionRequestTimeout != nil {
		cfg.connectionRequestTimeout = *b.connectionRequestTimeout
	}
	if b.connectTimeout != nil {
		cfg.connectTimeout = *b.connectTimeout
	}
	if b.responseTimeout != nil {
		cfg.responseTimeout = *b.responseTimeout
		cfg.responseTimeoutSet = true
	}
	return cfg
}
