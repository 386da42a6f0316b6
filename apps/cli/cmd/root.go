package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/hit/packages/http"
	"github.com/abdul-hamid-achik/hit/packages/output"
	"github.com/abdul-hamid-achik/hit/packages/request"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	dataFlag    string
	methodFlag  string
	jsonFlag    string
	verboseFlag bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "hit <url>",
	Short: "Send one HTTP request and print the response.",
	Long: `hit is a single-shot HTTP client: give it a URL, optionally a method
and a form or JSON payload, and it sends exactly one request and prints
the response. JSON response bodies are pretty-printed with sorted keys.

Examples:
  hit https://example.com
  hit https://example.com -X POST -d "name=ada&role=admin"
  hit https://example.com --json '{"name":"ada"}'`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRequest,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := run(); err != nil {
		os.Exit(exitCode(err))
	}
}

// run executes the root command. Errors that cobra surfaces before the
// command body runs (missing URL, unknown flag, wrong arg count) have not
// been formatted yet, so they are printed here.
func run() error {
	err := rootCmd.Execute()
	if err != nil {
		var rerr *reportedError
		if !errors.As(err, &rerr) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}
	}
	return err
}

// reportedError marks an error the command already printed itself.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return &reportedError{err: err}
}

func init() {
	rootCmd.Flags().StringVarP(&dataFlag, "data", "d", "", "Form-encoded payload (key=value&key=value)")
	rootCmd.Flags().StringVarP(&methodFlag, "request", "X", "GET", "HTTP method: GET or POST")
	rootCmd.Flags().StringVar(&jsonFlag, "json", "", "Raw JSON request body (implies POST)")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show status, duration and response headers")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// statusError marks a completed request whose status was outside 2xx.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.code)
}

func runRequest(cmd *cobra.Command, args []string) error {
	formatter := output.NewConsoleFormatter(
		output.WithWriter(cmd.OutOrStdout()),
		output.WithVerbose(verboseFlag),
		output.WithNoColor(noColorFlag),
	)

	method, err := request.ParseMethod(methodFlag)
	if err != nil {
		formatter.FormatError(fmt.Errorf("invalid method %q: must be GET or POST", methodFlag))
		return reported(err)
	}

	spec := &request.Spec{
		URL:    args[0],
		Method: method,
		Data:   dataFlag,
		JSON:   jsonFlag,
	}

	// The echo block always prints, even when validation fails right after.
	formatter.FormatRequest(spec)

	if err := http.ValidateURL(spec.URL); err != nil {
		formatter.FormatError(err)
		return reported(err)
	}

	payload, err := spec.Build()
	if err != nil {
		formatter.FormatError(err)
		return reported(err)
	}

	req := http.NewRequest(spec.EffectiveMethod().String(), spec.URL)
	req.SetBody(payload.Body, payload.ContentType)
	formatter.FormatRequestID(req.RequestID)

	client := http.NewClient()
	resp, err := client.Do(cmd.Context(), req)
	if err != nil {
		formatter.FormatError(err)
		return reported(err)
	}

	formatter.FormatResponse(resp)

	if !resp.IsSuccess() {
		return reported(&statusError{code: resp.StatusCode})
	}
	return nil
}

// exitCode maps a run failure onto the process exit code.
func exitCode(err error) int {
	var verr *http.ValidationError
	if errors.As(err, &verr) {
		return ExitValidationError
	}

	var terr *http.TransportError
	if errors.As(err, &terr) {
		return ExitNetworkError
	}

	var serr *statusError
	if errors.As(err, &serr) {
		return ExitHTTPFailure
	}

	return ExitUsageError
}
