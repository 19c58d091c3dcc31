package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Abraxas-365/wsapix/actionx"
	"github.com/Abraxas-365/wsapix/clients/wsapi"
	"github.com/Abraxas-365/wsapix/docx"
)

var (
	catalogFormat   string
	catalogBaseURL  string
	catalogResource string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the available actions",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVar(&catalogFormat, "format", "table", "table, json or curl")
	catalogCmd.Flags().StringVar(&catalogBaseURL, "base-url", wsapi.DefaultBaseURL, "gateway base URL used in curl examples")
	catalogCmd.Flags().StringVar(&catalogResource, "resource", "", "only list this resource")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	router := actionx.NewRouter(nil, nil)
	gen := docx.NewGenerator(router)
	out := cmd.OutOrStdout()

	switch docx.Format(catalogFormat) {
	case docx.JSON:
		return gen.WriteJSON(out)
	case docx.CURL:
		return gen.WriteCurlDocs(out, catalogBaseURL)
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RESOURCE\tOPERATION\tMETHOD\tPATH\tNOTES")
	for _, d := range router.Catalog() {
		if catalogResource != "" && d.Resource != catalogResource {
			continue
		}
		var notes []string
		if d.Cacheable {
			notes = append(notes, "cacheable")
		}
		if d.Binary {
			notes = append(notes, "binary")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.Resource, d.Operation, d.Method, d.Path, strings.Join(notes, ","))
	}
	return w.Flush()
}
