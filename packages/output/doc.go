// Package output formats the terminal output for a single request run.
//
// The console formatter prints the request echo block, the response body
// (pretty-printed with sorted keys when it is JSON), and classified error
// messages. Color can be disabled and the writer swapped for tests.
package output
