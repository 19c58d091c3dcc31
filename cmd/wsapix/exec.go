package main

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Abraxas-365/wsapix/actionx"
	"github.com/Abraxas-365/wsapix/flowx"
	"github.com/Abraxas-365/wsapix/fsx"
	"github.com/Abraxas-365/wsapix/validatex"
)

var (
	execParams         []string
	execParamsJSON     string
	execContinueOnFail bool
	execOutDir         string
	execDryRun         bool
)

var execCmd = &cobra.Command{
	Use:   "exec <resource> <operation>",
	Short: "Run one action and print the records as JSON",
	Example: `  wsapix exec chat pinChat --param chatId=1234567890@s.whatsapp.net --param pinned=true
  wsapix exec message sendText --params-json '[{"to":"1@s.whatsapp.net","message":"hi"}]'`,
	Args: cobra.ExactArgs(2),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().StringArrayVarP(&execParams, "param", "p", nil, "parameter as key=value, repeatable")
	execCmd.Flags().StringVar(&execParamsJSON, "params-json", "", "parameters as a JSON object, or an array of objects for a batch")
	execCmd.Flags().BoolVar(&execContinueOnFail, "continue-on-fail", false, "turn failed items into error records")
	execCmd.Flags().StringVar(&execOutDir, "out-dir", "", "write binary results to this directory")
	execCmd.Flags().BoolVar(&execDryRun, "dry-run", false, "print the gateway requests without sending them")
}

func runExec(cmd *cobra.Command, args []string) error {
	items, err := parseItems(execParams, execParamsJSON)
	if err != nil {
		return err
	}

	app, err := loadApp(cmd.Context())
	if err != nil {
		return err
	}
	defer app.Close()

	if execDryRun {
		var requests []any
		for _, item := range items {
			req, err := app.Router.Build(args[0], args[1], item)
			if err != nil {
				return err
			}
			requests = append(requests, req)
		}
		return printJSON(cmd.OutOrStdout(), requests)
	}

	records, err := app.Router.Execute(cmd.Context(), actionx.Invocation{
		Resource:       args[0],
		Operation:      args[1],
		Items:          items,
		ContinueOnFail: execContinueOnFail,
	})
	if err != nil {
		return err
	}

	if execOutDir != "" {
		if err := writeBinaries(cmd.Context(), fsx.NewLocal(execOutDir), records); err != nil {
			return err
		}
	}
	return printJSON(cmd.OutOrStdout(), records)
}

// parseItems merges --params-json and --param. --param values apply to
// every item.
func parseItems(pairs []string, rawJSON string) ([]flowx.Params, error) {
	var objects []map[string]any
	if trimmed := strings.TrimSpace(rawJSON); trimmed != "" {
		if strings.HasPrefix(trimmed, "[") {
			if err := json.Unmarshal([]byte(trimmed), &objects); err != nil {
				return nil, flowx.InvalidParameter("params-json", err.Error())
			}
		} else {
			var obj map[string]any
			if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
				return nil, flowx.InvalidParameter("params-json", err.Error())
			}
			objects = append(objects, obj)
		}
	}
	if len(objects) == 0 {
		objects = []map[string]any{{}}
	}

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if err := validatex.Var("param", key, "required"); err != nil || !found {
			return nil, flowx.InvalidParameter("param", "expected key=value, got "+pair)
		}
		for _, obj := range objects {
			if obj == nil {
				continue
			}
			obj[key] = value
		}
	}

	items := make([]flowx.Params, 0, len(objects))
	for _, obj := range objects {
		if obj == nil {
			obj = map[string]any{}
		}
		items = append(items, flowx.MapParams(obj))
	}
	return items, nil
}

// writeBinaries saves each binary and drops its data from the output
func writeBinaries(ctx context.Context, store fsx.FileSystem, records []flowx.Record) error {
	for i := range records {
		bin := records[i].Binary
		if bin == nil {
			continue
		}
		name := filepath.Base(bin.FileName)
		if err := store.WriteFile(ctx, name, bin.Data); err != nil {
			return err
		}
		records[i].JSON["savedTo"] = name
		bin.Data = nil
	}
	return nil
}
