package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rcrt-labs/rcrt-go/rcrt"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// readObject parses arg as a JSON object, or reads one from stdin when arg
// is "-".
func readObject(arg string) (rcrt.Object, error) {
	raw := []byte(arg)
	if arg == "-" {
		var err error
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	var obj rcrt.Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("parse body: %w", err)
	}
	return obj, nil
}
