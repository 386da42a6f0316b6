package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Method is the closed set of HTTP methods the tool supports.
type Method int

const (
	GET Method = iota
	POST
)

// ErrInvalidMethod is returned when a method token is not GET or POST.
var ErrInvalidMethod = errors.New("invalid HTTP method")

// ParseMethod matches a method token against the supported set. The match is
// exact and case-sensitive.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "GET":
		return GET, nil
	case "POST":
		return POST, nil
	}
	return GET, ErrInvalidMethod
}

func (m Method) String() string {
	if m == POST {
		return "POST"
	}
	return "GET"
}

// Spec is the fully resolved description of the one request to send, derived
// from the CLI arguments.
type Spec struct {
	URL    string
	Method Method
	Data   string // raw form payload from -d
	JSON   string // raw JSON text from --json
}

// EffectiveMethod is POST whenever a JSON body is present, regardless of the
// method flag.
func (s *Spec) EffectiveMethod() Method {
	if s.JSON != "" {
		return POST
	}
	return s.Method
}

// Payload is a ready-to-send request body with its content type. A zero
// Payload means a bodiless request.
type Payload struct {
	Body        string
	ContentType string
}

// Build resolves the spec into the body to send. A malformed --json value or
// a POST without data is a usage mistake and fails here, before any network
// activity.
func (s *Spec) Build() (*Payload, error) {
	if s.JSON != "" {
		// UseNumber keeps integers beyond float64 precision intact through
		// the re-encode.
		dec := json.NewDecoder(strings.NewReader(s.JSON))
		dec.UseNumber()

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		if dec.More() {
			return nil, errors.New("invalid JSON: trailing data after document")
		}

		compact, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return &Payload{
			Body:        string(compact),
			ContentType: "application/json",
		}, nil
	}

	if s.Method == GET {
		return &Payload{}, nil
	}

	if s.Data == "" {
		return nil, errors.New("POST requires form data (-d) or a JSON body (--json)")
	}

	values := url.Values{}
	for k, v := range ParseFormParams(s.Data) {
		values.Set(k, v)
	}
	return &Payload{
		Body:        values.Encode(),
		ContentType: "application/x-www-form-urlencoded",
	}, nil
}

// ParseFormParams splits a raw form payload into key/value pairs: pairs on
// '&', key from value on the first '='. Pairs without a '=' are skipped
// rather than rejected.
func ParseFormParams(data string) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(data, "&") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 {
			params[kv[0]] = kv[1]
		}
	}
	return params
}
