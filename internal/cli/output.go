package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// columnValues is one named column in JSON output.
type columnValues struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func writeColumnsText(w io.Writer, cols []columnValues) {
	for _, c := range cols {
		fmt.Fprintf(w, "%s\t%s\n", c.Name, formatValues(c.Values))
	}
}
