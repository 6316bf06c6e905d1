package requestconf

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// duration decodes Go duration strings ("30s", "3m") from YAML scalars.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = duration(parsed)
	return nil
}

// fileConfig mirrors the YAML document. Pointer fields distinguish absent
// keys from explicit zero values; absent keys keep the builder defaults.
type fileConfig struct {
	ExpectContinue           *bool     `yaml:"expect_continue"`
	Proxy                    *string   `yaml:"proxy"`
	CookieSpec               *string   `yaml:"cookie_spec"`
	Redirects                *bool     `yaml:"redirects"`
	CircularRedirects        *bool     `yaml:"circular_redirects"`
	MaxRedirects             *int      `yaml:"max_redirects"`
	Authentication           *bool     `yaml:"authentication"`
	TargetAuthSchemes        []string  `yaml:"target_auth_schemes"`
	ProxyAuthSchemes         []string  `yaml:"proxy_auth_schemes"`
	ConnectionRequestTimeout *duration `yaml:"connection_request_timeout"`
	ConnectTimeout           *duration `yaml:"connect_timeout"`
	ResponseTimeout          *duration `yaml:"response_timeout"`
	ContentCompression       *bool     `yaml:"content_compression"`
	HardCancellation         *bool     `yaml:"hard_cancellation"`
}

// Parse builds a RequestConfig from a YAML document. Every key is optional;
// keys left out of the document keep their builder defaults. Durations use
// Go syntax ("90s", "3m") and the proxy is given in authority form
// ("proxy.example.com:8080", optionally with a scheme).
//
// Parse returns a *ParseError for a malformed document and a *ConfigError
// for a proxy authority that cannot be parsed. Field values themselves are
// not validated, matching the builder.
func Parse(data []byte) (*RequestConfig, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, &ParseError{Err: err}
	}

	b := Custom()
	if fc.ExpectContinue != nil {
		b.SetExpectContinueEnabled(*fc.ExpectContinue)
	}
	if fc.Proxy != nil {
		h, err := ParseHost(*fc.Proxy)
		if err != nil {
			return nil, &ConfigError{Field: "proxy", Message: err.Error()}
		}
		b.SetProxy(&h)
	}
	if fc.CookieSpec != nil {
		b.SetCookieSpec(*fc.CookieSpec)
	}
	if fc.Redirects != nil {
		b.SetRedirectsEnabled(*fc.Redirects)
	}
	if fc.CircularRedirects != nil {
		b.SetCircularRedirectsAllowed(*fc.CircularRedirects)
	}
	if fc.MaxRedirects != nil {
		b.SetMaxRedirects(*fc.MaxRedirects)
	}
	if fc.Authentication != nil {
		b.SetAuthenticationEnabled(*fc.Authentication)
	}
	if fc.TargetAuthSchemes != nil {
		b.SetTargetPreferredAuthSchemes(fc.TargetAuthSchemes)
	}
	if fc.ProxyAuthSchemes != nil {
		b.SetProxyPreferredAuthSchemes(fc.ProxyAuthSchemes)
	}
	if fc.ConnectionRequestTimeout != nil {
		b.SetConnectionRequestTimeout(time.Duration(*fc.ConnectionRequestTimeout))
	}
	if fc.ConnectTimeout != nil {
		b.SetConnectTimeout(time.Duration(*fc.ConnectTimeout))
	}
	if fc.ResponseTimeout != nil {
		b.SetResponseTimeout(time.Duration(*fc.ResponseTimeout))
	}
	if fc.ContentCompression != nil {
		b.SetContentCompressionEnabled(*fc.ContentCompression)
	}
	if fc.HardCancellation != nil {
		b.SetHardCancellationEnabled(*fc.HardCancellation)
	}
	return b.Build(), nil
}

// LoadFile reads a YAML file and builds a RequestConfig from it.
func LoadFile(path string) (*RequestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading request config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}
