package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

// TransportErrorKind classifies a failure below the HTTP semantic layer.
type TransportErrorKind int

const (
	// TransportUnknown is any transport failure outside the recognized classes.
	TransportUnknown TransportErrorKind = iota
	// TransportDNS is a hostname resolution failure.
	TransportDNS
	// TransportConnect is a failure to establish the connection.
	TransportConnect
	// TransportTimeout is a request that ran out of time.
	TransportTimeout
)

// TransportError is a connectivity-level failure: DNS, connect, timeout, or
// anything else that happened before an HTTP status was available.
type TransportError struct {
	Kind TransportErrorKind
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsConnectivity reports whether the failure is one of the recognized
// connectivity classes (DNS, connect, timeout).
func (e *TransportError) IsConnectivity() bool {
	return e.Kind != TransportUnknown
}

// ClassifyTransportError wraps a transport failure with its connectivity
// class. Unrecognized failures still come back as a TransportError so no
// error kind is ever dropped silently.
func ClassifyTransportError(err error) error {
	if err == nil {
		return nil
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &TransportError{Kind: TransportDNS, Err: err}
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Kind: TransportTimeout, Err: err}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Kind: TransportTimeout, Err: err}
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return &TransportError{Kind: TransportConnect, Err: err}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &TransportError{Kind: TransportConnect, Err: err}
	}

	return &TransportError{Kind: TransportUnknown, Err: err}
}
