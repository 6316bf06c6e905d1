package requestconf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault_MatchesUnconfiguredBuilder tests that the well-known default
// instance equals a config built with no setters called
func TestDefault_MatchesUnconfiguredBuilder(t *testing.T) {
	built := Custom().Build()

	assert.True(t, Default.Equal(built))
	assert.True(t, built.Equal(Default))
}

// TestRequestConfig_Defaults tests every accessor's documented default
func TestRequestConfig_Defaults(t *testing.T) {
	cfg := Custom().Build()

	assert.False(t, cfg.ExpectContinueEnabled())
	assert.Nil(t, cfg.Proxy())
	assert.Empty(t, cfg.CookieSpec())
	assert.True(t, cfg.RedirectsEnabled())
	assert.False(t, cfg.CircularRedirectsAllowed())
	assert.Equal(t, 50, cfg.MaxRedirects())
	assert.True(t, cfg.AuthenticationEnabled())
	assert.Nil(t, cfg.TargetPreferredAuthSchemes())
	assert.Nil(t, cfg.ProxyPreferredAuthSchemes())
	assert.Equal(t, 3*time.Minute, cfg.ConnectionRequestTimeout())
	assert.Equal(t, 3*time.Minute, cfg.ConnectTimeout())
	assert.True(t, cfg.ContentCompressionEnabled())
	assert.True(t, cfg.HardCancellationEnabled())

	_, ok := cfg.ResponseTimeout()
	assert.False(t, ok, "response timeout should be unset by default")
}

// TestRequestConfig_String tests the diagnostic rendering
func TestRequestConfig_String(t *testing.T) {
	proxy := NewHost("proxy.example.com", 8080)
	cfg := Custom().
		SetProxy(&proxy).
		SetCookieSpec(CookieSpecStrict).
		SetMaxRedirects(5).
		SetResponseTimeout(30 * time.Second).
		Build()

	s := cfg.String()

	assert.Contains(t, s, "expectContinueEnabled=false")
	assert.Contains(t, s, "proxy=proxy.example.com:8080")
	assert.Contains(t, s, "cookieSpec=strict")
	assert.Contains(t, s, "redirectsEnabled=true")
	assert.Contains(t, s, "maxRedirects=5")
	assert.Contains(t, s, "circularRedirectsAllowed=false")
	assert.Contains(t, s, "authenticationEnabled=true")
	assert.Contains(t, s, "connectionRequestTimeout=3m0s")
	assert.Contains(t, s, "connectTimeout=3m0s")
	assert.Contains(t, s, "contentCompressionEnabled=true")
	assert.Contains(t, s, "hardCancellationEnabled=true")

	// The textual form never includes the response timeout.
	assert.NotContains(t, s, "responseTimeout")
}

// TestRequestConfig_Clone tests that clones are identical and independent
func TestRequestConfig_Clone(t *testing.T) {
	proxy := NewHostScheme("http", "proxy.internal", 3128)
	cfg := Custom().
		SetProxy(&proxy).
		SetTargetPreferredAuthSchemes([]string{AuthSchemeBearer, AuthSchemeBasic}).
		SetResponseTimeout(time.Second).
		Build()

	clone := cfg.Clone()
	require.NotSame(t, cfg, clone)
	assert.True(t, cfg.Equal(clone))

	// Mutating what the clone hands out must not leak back.
	schemes := clone.TargetPreferredAuthSchemes()
	schemes[0] = "mutated"
	assert.Equal(t, []string{AuthSchemeBearer, AuthSchemeBasic}, cfg.TargetPreferredAuthSchemes())

	cloneProxy := clone.Proxy()
	cloneProxy.Name = "mutated"
	assert.Equal(t, "proxy.internal", cfg.Proxy().Name)
}

// TestRequestConfig_Equal tests field-sensitive equality
func TestRequestConfig_Equal(t *testing.T) {
	proxy := NewHost("proxy.example.com", 8080)

	tests := []struct {
		name string
		a    *RequestConfig
		b    *RequestConfig
		want bool
	}{
		{
			name: "both default",
			a:    Custom().Build(),
			b:    Custom().Build(),
			want: true,
		},
		{
			name: "differs in max redirects",
			a:    Custom().Build(),
			b:    Custom().SetMaxRedirects(10).Build(),
			want: false,
		},
		{
			name: "differs in proxy",
			a:    Custom().Build(),
			b:    Custom().SetProxy(&proxy).Build(),
			want: false,
		},
		{
			name: "differs in response timeout presence",
			a:    Custom().Build(),
			b:    Custom().SetResponseTimeout(0).Build(),
			want: false,
		},
		{
			name: "differs in scheme order",
			a:    Custom().SetTargetPreferredAuthSchemes([]string{AuthSchemeBasic, AuthSchemeDigest}).Build(),
			b:    Custom().SetTargetPreferredAuthSchemes([]string{AuthSchemeDigest, AuthSchemeBasic}).Build(),
			want: false,
		},
		{
			name: "same proxy by value",
			a:    Custom().SetProxy(&proxy).Build(),
			b:    Custom().SetProxy(&Host{Name: "proxy.example.com", Port: 8080}).Build(),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

// TestRequestConfig_Immutability tests that a built config cannot be changed
// through slices or pointers passed in or handed out
func TestRequestConfig_Immutability(t *testing.T) {
	schemes := []string{AuthSchemeNegotiate, AuthSchemeNTLM}
	proxy := NewHost("proxy.example.com", 8080)

	b := Custom().
		SetProxyPreferredAuthSchemes(schemes).
		SetProxy(&proxy)
	cfg := b.Build()

	// Mutate the inputs after Build.
	schemes[0] = "mutated"
	proxy.Port = 9999

	assert.Equal(t, []string{AuthSchemeNegotiate, AuthSchemeNTLM}, cfg.ProxyPreferredAuthSchemes())
	assert.Equal(t, 8080, cfg.Proxy().Port)

	// Mutate the outputs.
	out := cfg.ProxyPreferredAuthSchemes()
	out[1] = "mutated"
	assert.Equal(t, []string{AuthSchemeNegotiate, AuthSchemeNTLM}, cfg.ProxyPreferredAuthSchemes())

	// Reusing the builder must not affect the earlier snapshot.
	b.SetMaxRedirects(1)
	assert.Equal(t, 50, cfg.MaxRedirects())
}
