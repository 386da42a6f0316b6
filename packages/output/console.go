package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/hit/packages/http"
	"github.com/abdul-hamid-achik/hit/packages/request"
)

// ConnectivityMessage is shown for DNS, connect and timeout failures.
const ConnectivityMessage = "Unable to connect to the server. Perhaps the network is offline or the server hostname cannot be resolved."

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatRequest prints the echo block for the request about to be sent. It
// runs before URL validation so the user always sees what was asked for,
// even when nothing ends up on the wire.
func (f *ConsoleFormatter) FormatRequest(spec *request.Spec) {
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "%s %s\n", bold("Requesting URL:"), spec.URL)
	fmt.Fprintf(f.writer, "%s %s\n", bold("Method:"), spec.EffectiveMethod())

	if spec.JSON != "" {
		fmt.Fprintf(f.writer, "%s %s\n", bold("JSON:"), spec.JSON)
	} else if spec.Data != "" {
		fmt.Fprintf(f.writer, "%s %s\n", bold("Data:"), spec.Data)
	}
}

// FormatRequestID prints the generated request id. Verbose only.
func (f *ConsoleFormatter) FormatRequestID(id string) {
	if !f.verbose {
		return
	}
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s\n", cyan("Request-Id:"), id)
}

// FormatResponse prints the outcome of a completed request. Non-2xx statuses
// get the failure line and nothing else; successful JSON bodies are
// re-serialized with deterministic key order.
func (f *ConsoleFormatter) FormatResponse(resp *http.Response) {
	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	if !resp.IsSuccess() {
		fmt.Fprintf(f.writer, "%s\n", red(fmt.Sprintf("Request failed with status code: %d.", resp.StatusCode)))
		return
	}

	if f.verbose {
		fmt.Fprintf(f.writer, "%s %s %s\n", green("✓"), resp.Status, cyan(fmt.Sprintf("(%dms)", resp.DurationMs())))

		names := make([]string, 0, len(resp.Headers))
		for k := range resp.Headers {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			fmt.Fprintf(f.writer, "  %s: %s\n", k, resp.Headers[k])
		}
	}

	if resp.IsJSON() {
		fmt.Fprintf(f.writer, "Response body (JSON with sorted keys):\n")
		fmt.Fprintf(f.writer, "%s\n", sortedJSON(resp.Body))
		return
	}

	fmt.Fprintf(f.writer, "Response body:\n")
	fmt.Fprintf(f.writer, "%s\n", strings.TrimSpace(resp.BodyString()))
}

// FormatError prints any failure. Transport errors get their connectivity
// message rather than the raw error chain.
func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()

	var terr *http.TransportError
	if errors.As(err, &terr) {
		if terr.IsConnectivity() {
			fmt.Fprintf(f.writer, "%s %s\n", red("Error:"), ConnectivityMessage)
		} else {
			fmt.Fprintf(f.writer, "%s The request could not be completed: %v\n", red("Error:"), terr.Unwrap())
		}
		return
	}

	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

// sortedJSON re-serializes a JSON document with indentation. Object keys
// come out sorted because encoding/json marshals maps in key order, which
// makes the output deterministic across runs. UseNumber keeps integers
// beyond float64 precision intact.
func sortedJSON(body []byte) string {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return strings.TrimSpace(string(body))
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return strings.TrimSpace(string(body))
	}
	return string(out)
}
