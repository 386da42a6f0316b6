package http

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidationKind classifies why a URL was rejected.
type ValidationKind int

const (
	// ValidationParse is any structural failure without a more specific class.
	ValidationParse ValidationKind = iota
	// ValidationScheme means the URL has no usable http/https base.
	ValidationScheme
	// ValidationIPv4 means the host looks like an IPv4 literal but is not one.
	ValidationIPv4
	// ValidationIPv6 means a bracketed host is not a valid IPv6 literal.
	ValidationIPv6
	// ValidationPort means the port is not a number in the valid range.
	ValidationPort
)

// ValidationError is a structural problem with the request URL, detected
// before any network activity.
type ValidationError struct {
	Kind ValidationKind
	Err  error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case ValidationScheme:
		return "The URL does not have a valid base protocol."
	case ValidationIPv4:
		return "The URL contains an invalid IPv4 address."
	case ValidationIPv6:
		return "The URL contains an invalid IPv6 address."
	case ValidationPort:
		return "The URL contains an invalid port number."
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ValidateURL checks that a URL is well-formed and uses http or https.
// Every failure is a *ValidationError carrying the user-facing message.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return classifyParseError(err)
	}

	if !u.IsAbs() || u.Host == "" {
		return &ValidationError{
			Kind: ValidationScheme,
			Err:  fmt.Errorf("not a base URL: %q", rawURL),
		}
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return &ValidationError{
			Kind: ValidationScheme,
			Err:  fmt.Errorf("unsupported scheme: %q", u.Scheme),
		}
	}

	host := u.Hostname()
	if strings.HasPrefix(u.Host, "[") {
		// Bracketed hosts must hold an IP literal.
		if net.ParseIP(host) == nil {
			return &ValidationError{
				Kind: ValidationIPv6,
				Err:  fmt.Errorf("invalid IPv6 literal: %q", host),
			}
		}
	} else if looksLikeIPv4(host) {
		if ip := net.ParseIP(host); ip == nil || ip.To4() == nil {
			return &ValidationError{
				Kind: ValidationIPv4,
				Err:  fmt.Errorf("invalid IPv4 literal: %q", host),
			}
		}
	}

	if port := u.Port(); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n < 0 || n > 65535 {
			return &ValidationError{
				Kind: ValidationPort,
				Err:  fmt.Errorf("invalid port: %q", port),
			}
		}
	}

	return nil
}

// classifyParseError maps url.Parse failures onto validation kinds. The
// stdlib only exposes these as message text, so the match is on substrings.
func classifyParseError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "invalid port"):
		return &ValidationError{Kind: ValidationPort, Err: err}
	case strings.Contains(msg, "missing ']'"):
		return &ValidationError{Kind: ValidationIPv6, Err: err}
	case strings.Contains(msg, "missing protocol scheme"):
		return &ValidationError{Kind: ValidationScheme, Err: err}
	}
	return &ValidationError{Kind: ValidationParse, Err: err}
}

// looksLikeIPv4 reports whether a host is attempting to be an IPv4 literal:
// nothing but digits and dots. "999.0.0.1" looks like one and should be
// rejected as an address rather than resolved as a hostname.
func looksLikeIPv4(host string) bool {
	if host == "" || !strings.Contains(host, ".") {
		return false
	}
	for _, r := range host {
		if r != '.' && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
