package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/konnektr-io/hrm-api-helpers/api/v1alpha1"
	"github.com/konnektr-io/hrm-api-helpers/internal/config"
	"github.com/konnektr-io/hrm-api-helpers/internal/fixture"
	"github.com/konnektr-io/hrm-api-helpers/internal/hrm"
	"github.com/konnektr-io/hrm-api-helpers/internal/util"
)

type shapeOptions struct {
	specFile string
	method   string
	endpoint string
	root     string
	fields   string
	body     string
	token    string
	insecure bool
}

func newShapeCmd(root *rootOptions) *cobra.Command {
	opts := &shapeOptions{}

	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Send one request and print the shaped record as JSON",
		Example: `  hrmctl shape --endpoint /api/v2/leave/holidays --fields 'ids[]=id;names[]=name' --token $SESSION
  hrmctl shape --spec vacancies.yaml --token $SESSION`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShape(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.specFile, "spec", "", "YAML or JSON request spec file.")
	cmd.Flags().StringVar(&opts.method, "method", "GET", "HTTP method.")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "Endpoint relative to base.url.")
	cmd.Flags().StringVar(&opts.root, "root", v1alpha1.DefaultRoot, "JSON path of the node holding the payload.")
	cmd.Flags().StringVar(&opts.fields, "fields", "", "Field declarations, e.g. 'ids[]=id;nationality=nationality.name:string'.")
	cmd.Flags().StringVar(&opts.body, "body", "", "Request body template. Overrides the body of --spec.")
	cmd.Flags().StringVar(&opts.token, "token", os.Getenv("HRM_TOKEN"), "Session cookie value (or bearer/api token).")
	cmd.Flags().BoolVar(&opts.insecure, "insecure", false, "Skip TLS certificate verification.")
	return cmd
}

func loadRequestSpec(opts *shapeOptions) (*v1alpha1.RequestSpec, error) {
	if opts.specFile != "" {
		data, err := os.ReadFile(opts.specFile)
		if err != nil {
			return nil, fmt.Errorf("reading request spec: %w", err)
		}
		spec, err := util.ParseRequestSpec(data)
		if err != nil {
			return nil, err
		}
		if opts.body != "" {
			spec.Body = opts.body
		}
		if opts.insecure {
			spec.Insecure = true
		}
		return spec, nil
	}

	if opts.endpoint == "" {
		return nil, fmt.Errorf("either --spec or --endpoint is required")
	}
	spec := &v1alpha1.RequestSpec{
		Method:   opts.method,
		Endpoint: opts.endpoint,
		Body:     opts.body,
		Insecure: opts.insecure,
		Shape:    v1alpha1.ShapeSpec{Root: opts.root},
	}
	if opts.fields != "" {
		fields, err := util.ParseFieldSpecs(opts.fields)
		if err != nil {
			return nil, err
		}
		spec.Shape.Fields = fields
	}
	return spec, nil
}

func runShape(cmd *cobra.Command, root *rootOptions, opts *shapeOptions) error {
	spec, err := loadRequestSpec(opts)
	if err != nil {
		return err
	}

	cfg, err := config.Load(root.configPath)
	if err != nil {
		return err
	}
	setupLog.V(1).Info("Loaded configuration", "path", cfg.Path(), "baseURL", cfg.BaseURL())

	payload, err := util.NewTemplateProcessor(fixture.Default).ProcessPayload(spec.Body, nil)
	if err != nil {
		return fmt.Errorf("rendering body: %w", err)
	}
	var body interface{}
	if payload != "" {
		body = payload
	}

	client := hrm.NewClient(cfg, hrm.WithLogger(setupLog))
	record, err := client.ShapeRequest(cmd.Context(), spec, opts.token, body)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), record.Snapshot())
}

type uniqueOptions struct {
	base   string
	count  int
	asInts bool
}

func newUniqueCmd() *cobra.Command {
	opts := &uniqueOptions{}

	cmd := &cobra.Command{
		Use:   "unique",
		Short: "Print identifiers with a never repeating four digit suffix",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnique(cmd.OutOrStdout(), fixture.NewGenerator(nil), opts)
		},
	}

	cmd.Flags().StringVar(&opts.base, "base", "", "Base name, or base number with --int.")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "How many identifiers to print.")
	cmd.Flags().BoolVar(&opts.asInts, "int", false, "Treat --base as a number and add the suffix to it.")
	return cmd
}

func runUnique(out io.Writer, gen *fixture.Generator, opts *uniqueOptions) error {
	if opts.count < 1 || opts.count > fixture.MaxSuffix-fixture.MinSuffix+1 {
		return fmt.Errorf("--count must be between 1 and %d", fixture.MaxSuffix-fixture.MinSuffix+1)
	}

	base := 0
	if opts.asInts {
		var err error
		if opts.base != "" {
			base, err = strconv.Atoi(opts.base)
			if err != nil {
				return fmt.Errorf("--base is not a number: %w", err)
			}
		}
	}

	for range opts.count {
		if opts.asInts {
			fmt.Fprintln(out, gen.UniqueID(base))
		} else {
			fmt.Fprintln(out, gen.UniqueName(opts.base))
		}
	}
	return nil
}

func newRenderCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a payload template, '-' reads stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("reading template: %w", err)
			}

			tp := util.NewTemplateProcessor(fixture.NewGenerator(nil))
			var out string
			if raw {
				out, err = tp.ProcessTemplate(string(data), nil)
			} else {
				out, err = tp.ProcessPayload(string(data), nil)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Do not require the result to be JSON.")
	return cmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
