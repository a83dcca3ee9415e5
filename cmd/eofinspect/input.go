package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/malik672/EOF-Parser/eof"
)

// decodeInput decodes arg either as a file path or, when asHex is set, as a
// hex string with optional 0x prefix and whitespace.
func decodeInput(arg string, asHex bool) (*eof.Container, error) {
	if !asHex {
		return eof.DecodeFile(arg)
	}
	data, err := parseHex(arg)
	if err != nil {
		return nil, err
	}
	return eof.DecodeBytes(data)
}

func parseHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hex input: %w", err)
	}
	return data, nil
}
