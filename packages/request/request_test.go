package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("GET")
	require.NoError(t, err)
	assert.Equal(t, GET, m)

	m, err = ParseMethod("POST")
	require.NoError(t, err)
	assert.Equal(t, POST, m)
}

func TestParseMethod_Invalid(t *testing.T) {
	for _, token := range []string{"PUT", "DELETE", "get", "post", "Get", ""} {
		_, err := ParseMethod(token)
		assert.ErrorIs(t, err, ErrInvalidMethod, "token %q should be rejected", token)
	}
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "GET", GET.String())
	assert.Equal(t, "POST", POST.String())
}

func TestSpec_EffectiveMethod(t *testing.T) {
	spec := &Spec{Method: GET}
	assert.Equal(t, GET, spec.EffectiveMethod())

	// A JSON body forces POST regardless of the method flag.
	spec = &Spec{Method: GET, JSON: `{"x":1}`}
	assert.Equal(t, POST, spec.EffectiveMethod())

	spec = &Spec{Method: POST}
	assert.Equal(t, POST, spec.EffectiveMethod())
}

func TestParseFormParams(t *testing.T) {
	params := ParseFormParams("a=1&b=2")
	assert.Equal(t, map[string]string{"a": "1", "b": "2"}, params)
}

func TestParseFormParams_SkipsMalformedPairs(t *testing.T) {
	params := ParseFormParams("a=1&bogus")
	assert.Equal(t, map[string]string{"a": "1"}, params)

	params = ParseFormParams("bogus")
	assert.Empty(t, params)
}

func TestParseFormParams_EmptyValue(t *testing.T) {
	params := ParseFormParams("a=&b=2")
	assert.Equal(t, map[string]string{"a": "", "b": "2"}, params)
}

func TestParseFormParams_ValueWithEquals(t *testing.T) {
	// Only the first '=' separates key from value.
	params := ParseFormParams("q=a=b")
	assert.Equal(t, map[string]string{"q": "a=b"}, params)
}

func TestSpec_Build_Get(t *testing.T) {
	spec := &Spec{URL: "http://example.com", Method: GET}
	payload, err := spec.Build()

	require.NoError(t, err)
	assert.Empty(t, payload.Body)
	assert.Empty(t, payload.ContentType)
}

func TestSpec_Build_GetIgnoresData(t *testing.T) {
	spec := &Spec{URL: "http://example.com", Method: GET, Data: "a=1"}
	payload, err := spec.Build()

	require.NoError(t, err)
	assert.Empty(t, payload.Body)
}

func TestSpec_Build_PostForm(t *testing.T) {
	spec := &Spec{URL: "http://example.com", Method: POST, Data: "b=2&a=1"}
	payload, err := spec.Build()

	require.NoError(t, err)
	assert.Equal(t, "a=1&b=2", payload.Body)
	assert.Equal(t, "application/x-www-form-urlencoded", payload.ContentType)
}

func TestSpec_Build_PostFormEscapes(t *testing.T) {
	spec := &Spec{URL: "http://example.com", Method: POST, Data: "name=ada lovelace"}
	payload, err := spec.Build()

	require.NoError(t, err)
	assert.Equal(t, "name=ada+lovelace", payload.Body)
}

func TestSpec_Build_PostWithoutData(t *testing.T) {
	spec := &Spec{URL: "http://example.com", Method: POST}
	_, err := spec.Build()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "POST requires")
}

func TestSpec_Build_JSON(t *testing.T) {
	spec := &Spec{URL: "http://example.com", Method: GET, JSON: `{"name": "ada"}`}
	payload, err := spec.Build()

	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"ada"}`, payload.Body)
	assert.Equal(t, "application/json", payload.ContentType)
}

func TestSpec_Build_JSONTakesPrecedenceOverData(t *testing.T) {
	spec := &Spec{URL: "http://example.com", Method: POST, Data: "a=1", JSON: `{"x":1}`}
	payload, err := spec.Build()

	require.NoError(t, err)
	assert.Equal(t, "application/json", payload.ContentType)
	assert.JSONEq(t, `{"x":1}`, payload.Body)
}

func TestSpec_Build_JSONPreservesLargeIntegers(t *testing.T) {
	spec := &Spec{URL: "http://example.com", JSON: `{"id":9007199254740993}`}
	payload, err := spec.Build()

	require.NoError(t, err)
	assert.Contains(t, payload.Body, "9007199254740993", "integers beyond float64 precision must survive re-encoding")
}

func TestSpec_Build_JSONRejectsTrailingData(t *testing.T) {
	spec := &Spec{URL: "http://example.com", JSON: `{"x":1} {"y":2}`}
	_, err := spec.Build()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestSpec_Build_InvalidJSON(t *testing.T) {
	spec := &Spec{URL: "http://example.com", JSON: `{"x":`}
	_, err := spec.Build()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}
