// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// encode writes v as JSON or YAML; text is rendered by each command.
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", format, errBadFormat)
	}
}

// joinSymbols renders symbols space-separated.
func joinSymbols(seq []int) string {
	parts := make([]string, len(seq))
	for i, s := range seq {
		parts[i] = strconv.Itoa(s)
	}

	return strings.Join(parts, " ")
}

// parseSymbols accepts symbols as separate args and/or comma-separated lists:
// "0 1 1", "0,1,1" and "0,1 1" all parse to [0 1 1].
func parseSymbols(args []string) ([]int, error) {
	var seq []int
	for _, arg := range args {
		for _, f := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			s, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("invalid symbol %q: %w", f, err)
			}
			seq = append(seq, s)
		}
	}

	return seq, nil
}
