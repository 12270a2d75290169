package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lawlens/lawlens/internal/core"
	"github.com/lawlens/lawlens/internal/core/congress"
	"github.com/lawlens/lawlens/internal/errors"
	"github.com/lawlens/lawlens/internal/observability"
	"github.com/lawlens/lawlens/internal/output"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <resource> [sub-path]",
	Short: "Fetch data from the Congress.gov API",
	Long: `Fetch data from a Congress.gov v3 resource family.

The resource must be one of the known families (see "lawlens resources").
An optional sub-path narrows the request, e.g.:

  lawlens fetch bill 118/hr/3076
  lawlens fetch member L000174
  lawlens fetch congress current`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().String("format", "", "response format: json or xml")
	fetchCmd.Flags().Int("offset", -1, "pagination offset (default 0)")
	fetchCmd.Flags().Int("limit", -1, "page size, capped at 250 upstream (default 25)")
	fetchCmd.Flags().String("from", "", "updateDate window start (2006-01-02T15:04:05Z)")
	fetchCmd.Flags().String("to", "", "updateDate window end (2006-01-02T15:04:05Z)")
	fetchCmd.Flags().String("sort", "", "sort order, e.g. updateDate+desc")
	fetchCmd.Flags().StringSlice("param", nil, "extra query parameter as key=value (repeatable)")
	fetchCmd.Flags().Bool("throttle", false, "wait for the pace window before sending")
	fetchCmd.Flags().String("output-format", "raw", "output format: raw, json, table")
	fetchCmd.Flags().String("out", "", "write output to file instead of stdout")
}

func runFetch(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(strings.TrimSpace(args[0]))
	if !core.IsResource(name) {
		return errors.NewInvalidInputError(fmt.Sprintf("unknown resource %q; run \"lawlens resources\" for the list", name))
	}
	resource := core.Resource(name)

	subPath := ""
	if len(args) == 2 {
		subPath = args[1]
	}

	q, err := queryFromFlags(cmd)
	if err != nil {
		return err
	}

	outFormat, err := resolveOutputFormat(cmd)
	if err != nil {
		return err
	}
	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	_, client, err := loadConfigAndClient()
	if err != nil {
		return err
	}

	result, err := client.Fetch(cmd.Context(), resource, subPath, q)
	if err != nil {
		return err
	}

	observability.CLILogger.Debug("Fetch complete",
		zap.String("url", result.URL),
		zap.Int("status", result.StatusCode),
		zap.Int("attempts", result.Attempts),
		zap.Duration("elapsed", result.Elapsed))

	rendered, err := renderFetchResult(result, outFormat)
	if err != nil {
		return err
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
			return err
		}
		observability.CLILogger.Info("Wrote output", zap.String("path", outPath))
		return nil
	}

	fmt.Println(rendered)
	return nil
}

// queryFromFlags maps the fetch flags onto a request query. Unset
// flags stay nil/empty so client defaults apply.
func queryFromFlags(cmd *cobra.Command) (*congress.Query, error) {
	q := &congress.Query{}

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}
	q.Format = format

	offset, err := cmd.Flags().GetInt("offset")
	if err != nil {
		return nil, err
	}
	if offset >= 0 {
		q.Offset = congress.Int(offset)
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return nil, err
	}
	if limit >= 0 {
		q.Limit = congress.Int(limit)
	}

	q.FromDateTime, err = cmd.Flags().GetString("from")
	if err != nil {
		return nil, err
	}
	q.ToDateTime, err = cmd.Flags().GetString("to")
	if err != nil {
		return nil, err
	}
	q.Sort, err = cmd.Flags().GetString("sort")
	if err != nil {
		return nil, err
	}
	q.Throttle, err = cmd.Flags().GetBool("throttle")
	if err != nil {
		return nil, err
	}

	params, err := cmd.Flags().GetStringSlice("param")
	if err != nil {
		return nil, err
	}
	for _, pair := range params {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, errors.NewInvalidInputError(fmt.Sprintf("malformed --param %q, expected key=value", pair))
		}
		if q.Extra == nil {
			q.Extra = make(map[string]string)
		}
		q.Extra[strings.TrimSpace(key)] = value
	}

	return q, nil
}

func resolveOutputFormat(cmd *cobra.Command) (output.Format, error) {
	value, err := cmd.Flags().GetString("output-format")
	if err != nil {
		return "", err
	}
	return output.ParseFormat(value)
}

func renderFetchResult(result *core.FetchResult, format output.Format) (string, error) {
	switch format {
	case output.FormatJSON:
		return output.JSON(result)
	case output.FormatTable:
		return output.FetchTable(result) + "\n" + result.Body, nil
	default:
		return result.Body, nil
	}
}
