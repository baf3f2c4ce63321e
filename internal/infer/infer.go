// Package infer classifies raw text values into the coarse catalog types
// used when registering bronze extracts.
//
// Design constraints:
//   - Classification is best-effort and must never fail: every input maps to
//     exactly one Type, with TypeString as the conservative fallback.
//   - The order of attempts is part of the contract. Integer is tried before
//     date, so "2024" classifies as int, not as a year.
package infer

import (
	"strconv"
	"strings"
	"time"
)

// Type is a catalog column type label. The string values are what the schema
// catalog expects (Glue-style primitive names).
type Type string

const (
	TypeString Type = "string"
	TypeInt    Type = "int"
	TypeDouble Type = "double"
	TypeDate   Type = "date"
)

// dateLayouts are the accepted date patterns, in attempt order.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// Infer classifies a single raw text value.
//
// Attempt order: blank → string, integer, float, date (first matching
// layout), string. Failed parses mean "not this type", never an error.
func Infer(value string) Type {
	if value == "" {
		return TypeString
	}
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return TypeInt
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return TypeDouble
	}
	for _, lay := range dateLayouts {
		if _, err := time.Parse(lay, value); err == nil {
			return TypeDate
		}
	}
	return TypeString
}

// FirstNonBlank classifies a column from its sample values: the type of the
// first sample that is non-blank after trimming. All-blank samples default
// to string.
func FirstNonBlank(samples []string) Type {
	for _, v := range samples {
		if strings.TrimSpace(v) == "" {
			continue
		}
		return Infer(v)
	}
	return TypeString
}
