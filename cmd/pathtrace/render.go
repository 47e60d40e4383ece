package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/asciipath/config"
	"github.com/katalvlaran/asciipath/walker"
)

// report is the JSON shape of one walk.
type report struct {
	Input   string `json:"input"`
	Path    string `json:"path"`
	Letters string `json:"letters"`
	Status  string `json:"status"`
	Steps   int    `json:"steps"`
}

// render writes results in the requested format. Text output prints a
// "== name ==" header only when there is more than one input.
func render(w io.Writer, format string, inputs []input, results []walker.Result) error {
	switch format {
	case config.FormatJSON:
		reports := make([]report, len(results))
		for i, res := range results {
			reports[i] = report{
				Input:   inputs[i].name,
				Path:    res.Path,
				Letters: res.Letters,
				Status:  res.Status.String(),
				Steps:   res.Steps,
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)

	case config.FormatText:
		for i, res := range results {
			if len(results) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "== %s ==\n", inputs[i].name)
			}
			fmt.Fprintf(w, "Path: %s\n", res.Path)
			fmt.Fprintf(w, "Letters: %s\n", res.Letters)
			fmt.Fprintf(w, "Status: %s\n", res.Status)
		}
		return nil
	}

	return fmt.Errorf("%q: %w", format, config.ErrUnknownFormat)
}
