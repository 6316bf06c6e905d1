// Package requestconf provides immutable per-request configuration for HTTP
// clients: timeouts, redirect policy, proxy selection, authentication scheme
// preferences, compression negotiation and cancellation semantics.
//
// A RequestConfig is assembled once through a Builder and then shared freely.
// It is never mutated after construction, which makes it safe for concurrent
// use by any number of goroutines without locking. The config carries no
// behavior of its own; it is read by the request executor, connection
// manager, redirect handler and auth negotiator that a client wires together.
package requestconf

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// RequestConfig is an immutable snapshot of per-request options.
//
// Construct one with Custom() or seed a builder from an existing instance
// with Copy(). All accessors are read-only; slice-valued and proxy accessors
// return copies so the snapshot cannot be modified through aliases.
type RequestConfig struct {
	expectContinueEnabled      bool
	proxy                      *Host
	cookieSpec                 string
	redirectsEnabled           bool
	circularRedirectsAllowed   bool
	maxRedirects               int
	authenticationEnabled      bool
	targetPreferredAuthSchemes []string
	proxyPreferredAuthSchemes  []string
	connectionRequestTimeout   time.Duration
	connectTimeout             time.Duration
	responseTimeout            time.Duration
	responseTimeoutSet         bool
	contentCompressionEnabled  bool
	hardCancellationEnabled    bool
}

// Default is the stock configuration, equivalent to Custom().Build().
var Default = Custom().Build()

// ExpectContinueEnabled reports whether the 'Expect: 100-continue' handshake
// is used for requests that carry a body. The handshake lets the client learn
// whether the server will accept the request before the body is transmitted,
// which can help with large uploads against authenticating servers, but it
// is known to confuse some older servers and proxies.
//
// Default: false.
func (c *RequestConfig) ExpectContinueEnabled() bool {
	return c.expectContinueEnabled
}

// Proxy returns the explicit proxy to route this request through, or nil if
// none was configured. The returned value is a copy.
//
// Default: nil.
func (c *RequestConfig) Proxy() *Host {
	if c.proxy == nil {
		return nil
	}
	h := *c.proxy
	return &h
}

// CookieSpec returns the name of the cookie policy to apply, or the empty
// string if none was configured. See the CookieSpec* constants for the
// well-known policy names.
//
// Default: "".
func (c *RequestConfig) CookieSpec() string {
	return c.cookieSpec
}

// RedirectsEnabled reports whether redirect responses are followed
// automatically.
//
// Default: true.
func (c *RequestConfig) RedirectsEnabled() bool {
	return c.redirectsEnabled
}

// CircularRedirectsAllowed reports whether a redirect chain may revisit a
// location it has already been through.
//
// Default: false.
func (c *RequestConfig) CircularRedirectsAllowed() bool {
	return c.circularRedirectsAllowed
}

// MaxRedirects returns the upper bound on redirect hops before the request
// fails. Only meaningful when RedirectsEnabled is true.
//
// Default: 50.
func (c *RequestConfig) MaxRedirects() int {
	return c.maxRedirects
}

// AuthenticationEnabled reports whether credentials are negotiated
// automatically.
//
// Default: true.
func (c *RequestConfig) AuthenticationEnabled() bool {
	return c.authenticationEnabled
}

// TargetPreferredAuthSchemes returns the preference order of auth schemes for
// the target host, or nil if none was configured. Consulted only when
// AuthenticationEnabled is true. The returned slice is a copy.
//
// Default: nil.
func (c *RequestConfig) TargetPreferredAuthSchemes() []string {
	return slices.Clone(c.targetPreferredAuthSchemes)
}

// ProxyPreferredAuthSchemes returns the preference order of auth schemes for
// the proxy host, or nil if none was configured. Consulted only when
// AuthenticationEnabled is true. The returned slice is a copy.
//
// Default: nil.
func (c *RequestConfig) ProxyPreferredAuthSchemes() []string {
	return slices.Clone(c.proxyPreferredAuthSchemes)
}

// ConnectionRequestTimeout returns the maximum time to wait when leasing a
// connection from the connection manager. Zero means wait forever.
//
// Default: 3 minutes.
func (c *RequestConfig) ConnectionRequestTimeout() time.Duration {
	return c.connectionRequestTimeout
}

// ConnectTimeout returns the maximum time to wait for a new transport
// connection to be fully established, including TLS negotiation. Zero means
// wait forever.
//
// Default: 3 minutes.
func (c *RequestConfig) ConnectTimeout() time.Duration {
	return c.connectTimeout
}

// ResponseTimeout returns the maximum time to wait for a response after the
// request has been sent. The second return value is false when no response
// timeout was configured, in which case this option imposes no limit.
//
// Default: unset.
func (c *RequestConfig) ResponseTimeout() (time.Duration, bool) {
	return c.responseTimeout, c.responseTimeoutSet
}

// ContentCompressionEnabled reports whether the server is asked to compress
// the response body.
//
// Default: true.
func (c *RequestConfig) ContentCompressionEnabled() bool {
	return c.contentCompressionEnabled
}

// HardCancellationEnabled reports whether cancelling a request kills the
// underlying connection. When false, the executor attempts to preserve the
// connection by letting the request complete in the background and
// discarding the response.
//
// Default: true.
func (c *RequestConfig) HardCancellationEnabled() bool {
	return c.hardCancellationEnabled
}

// Clone returns an independent copy with the same field values.
func (c *RequestConfig) Clone() *RequestConfig {
	clone := *c
	clone.targetPreferredAuthSchemes = slices.Clone(c.targetPreferredAuthSchemes)
	clone.proxyPreferredAuthSchemes = slices.Clone(c.proxyPreferredAuthSchemes)
	clone.proxy = c.Proxy()
	return &clone
}

// Equal reports whether c and other hold the same field values.
func (c *RequestConfig) Equal(other *RequestConfig) bool {
	if c == nil || other == nil {
		return c == other
	}
	if (c.proxy == nil) != (other.proxy == nil) {
		return false
	}
	if c.proxy != nil && *c.proxy != *other.proxy {
		return false
	}
	return c.expectContinueEnabled == other.expectContinueEnabled &&
		c.cookieSpec == other.cookieSpec &&
		c.redirectsEnabled == other.redirectsEnabled &&
		c.circularRedirectsAllowed == other.circularRedirectsAllowed &&
		c.maxRedirects == other.maxRedirects &&
		c.authenticationEnabled == other.authenticationEnabled &&
		slices.Equal(c.targetPreferredAuthSchemes, other.targetPreferredAuthSchemes) &&
		slices.Equal(c.proxyPreferredAuthSchemes, other.proxyPreferredAuthSchemes) &&
		c.connectionRequestTimeout == other.connectionRequestTimeout &&
		c.connectTimeout == other.connectTimeout &&
		c.responseTimeout == other.responseTimeout &&
		c.responseTimeoutSet == other.responseTimeoutSet &&
		c.contentCompressionEnabled == other.contentCompressionEnabled &&
		c.hardCancellationEnabled == other.hardCancellationEnabled
}

// String returns a diagnostic rendering of the configuration. The response
// timeout is not part of the textual form.
func (c *RequestConfig) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	fmt.Fprintf(&sb, "expectContinueEnabled=%v", c.expectContinueEnabled)
	fmt.Fprintf(&sb, ", proxy=%v", c.proxy)
	fmt.Fprintf(&sb, ", cookieSpec=%s", c.cookieSpec)
	fmt.Fprintf(&sb, ", redirectsEnabled=%v", c.redirectsEnabled)
	fmt.Fprintf(&sb, ", maxRedirects=%d", c.maxRedirects)
	fmt.Fprintf(&sb, ", circularRedirectsAllowed=%v", c.circularRedirectsAllowed)
	fmt.Fprintf(&sb, ", authenticationEnabled=%v", c.authenticationEnabled)
	fmt.Fprintf(&sb, ", targetPreferredAuthSchemes=%v", c.targetPreferredAuthSchemes)
	fmt.Fprintf(&sb, ", proxyPreferredAuthSchemes=%v", c.proxyPreferredAuthSchemes)
	fmt.Fprintf(&sb, ", connectionRequestTimeout=%v", c.connectionRequestTimeout)
	fmt.Fprintf(&sb, ", connectTimeout=%v", c.connectTimeout)
	fmt.Fprintf(&sb, ", contentCompressionEnabled=%v", c.contentCompressionEnabled)
	fmt.Fprintf(&sb, ", hardCancellationEnabled=%v", c.hardCancellationEnabled)
	sb.WriteString("]")
	return sb.String()
}
