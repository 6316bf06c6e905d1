package requestconf

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Host identifies an HTTP origin or proxy endpoint. A zero Port means the
// port is unspecified and the scheme default applies; an empty Scheme leaves
// the protocol to the consumer.
type Host struct {
	Scheme string
	Name   string
	Port   int
}

// NewHost returns a Host with the given name and port and no scheme.
func NewHost(name string, port int) Host {
	return Host{Name: name, Port: port}
}

// NewHostScheme returns a Host with an explicit scheme.
func NewHostScheme(scheme, name string, port int) Host {
	return Host{Scheme: scheme, Name: name, Port: port}
}

// ParseHost parses an authority string into a Host. Accepted forms are
// "name", "name:port", "scheme://name" and "scheme://name:port". IPv6
// literals must be bracketed when a port is present, as in "[::1]:8080".
func ParseHost(s string) (Host, error) {
	var h Host
	rest := s
	if i := strings.Index(rest, "://"); i >= 0 {
		h.Scheme = strings.ToLower(rest[:i])
		rest = rest[i+3:]
	}
	if name, port, err := net.SplitHostPort(rest); err == nil {
		p, err := strconv.Atoi(port)
		if err != nil || p < 0 {
			return Host{}, fmt.Errorf("invalid port in host %q", s)
		}
		h.Name = name
		h.Port = p
	} else {
		h.Name = rest
	}
	if h.Name == "" {
		return Host{}, fmt.Errorf("empty host name in %q", s)
	}
	return h, nil
}

// String renders the host in authority form, omitting the scheme and port
// when unset.
func (h Host) String() string {
	s := h.Name
	if h.Port > 0 {
		s = net.JoinHostPort(h.Name, strconv.Itoa(h.Port))
	}
	if h.Scheme != "" {
		s = h.Scheme + "://" + s
	}
	return s
}
