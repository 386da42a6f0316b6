// Package http provides the HTTP client used to send the single request.
//
// It wraps the standard library's http package with:
//   - Configurable timeouts and default headers
//   - URL validation with classified, user-facing failure messages
//   - Transport error classification (DNS, connect, timeout)
//   - Response handling and body reading
package http
