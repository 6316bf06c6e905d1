package requestconf

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const attrPrefix = "http.request_config."

// SpanAttributes renders the config as OpenTelemetry attributes so a request
// executor can annotate spans with the effective per-request options.
// Optional fields (proxy, cookie spec, scheme preferences, response timeout)
// are included only when set.
func (c *RequestConfig) SpanAttributes() []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 14)
	attrs = append(attrs,
		attribute.Bool(attrPrefix+"expect_continue", c.expectContinueEnabled),
	)
	if c.proxy != nil {
		attrs = append(attrs, attribute.String(attrPrefix+"proxy", c.proxy.String()))
	}
	if c.cookieSpec != "" {
		attrs = append(attrs, attribute.String(attrPrefix+"cookie_spec", c.cookieSpec))
	}
	attrs = append(attrs,
		attribute.Bool(attrPrefix+"redirects", c.redirectsEnabled),
		attribute.Int(attrPrefix+"max_redirects", c.maxRedirects),
		attribute.Bool(attrPrefix+"circular_redirects", c.circularRedirectsAllowed),
		attribute.Bool(attrPrefix+"authentication", c.authenticationEnabled),
	)
	if len(c.targetPreferredAuthSchemes) > 0 {
		attrs = append(attrs, attribute.StringSlice(attrPrefix+"target_auth_schemes", c.TargetPreferredAuthSchemes()))
	}
	if len(c.proxyPreferredAuthSchemes) > 0 {
		attrs = append(attrs, attribute.StringSlice(attrPrefix+"proxy_auth_schemes", c.ProxyPreferredAuthSchemes()))
	}
	attrs = append(attrs,
		attribute.String(attrPrefix+"connection_request_timeout", c.connectionRequestTimeout.String()),
		attribute.String(attrPrefix+"connect_timeout", c.connectTimeout.String()),
	)
	if c.responseTimeoutSet {
		attrs = append(attrs, attribute.String(attrPrefix+"response_timeout", c.responseTimeout.String()))
	}
	attrs = append(attrs,
		attribute.Bool(attrPrefix+"content_compression", c.contentCompressionEnabled),
		attribute.Bool(attrPrefix+"hard_cancellation", c.hardCancellationEnabled),
	)
	return attrs
}

// SpanStartOption wraps SpanAttributes for direct use with tracer.Start.
func (c *RequestConfig) SpanStartOption() trace.SpanStartOption {
	return trace.WithAttributes(c.SpanAttributes()...)
}
