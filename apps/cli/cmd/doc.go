// Package cmd implements the hit CLI using Cobra.
//
// The root command itself sends the request:
//
//	hit <url> [-d <data>] [-X GET|POST] [--json <text>]
//
// plus a version subcommand. Failures map onto distinct exit codes: 1 for
// non-2xx responses, 2 for URL validation, 4 for transport failures and 64
// for usage mistakes.
package cmd
