package main

import (
	"encoding/json"
	"io"

	"github.com/fatih/color"

	"github.com/Abraxas-365/wsapix/errx"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// describe renders an error for the terminal
func describe(err error) string {
	if xerr, ok := errx.As(err); ok {
		return color.RedString("error: ") + xerr.String()
	}
	return color.RedString("error: ") + err.Error()
}
