package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// CopyFormat is an export projection of a palette's colors
type CopyFormat string

const (
	FormatCSS          CopyFormat = "css"
	FormatCSSVariables CopyFormat = "css-variables"
	FormatJSON         CopyFormat = "json"
	FormatText         CopyFormat = "txt"
)

// CopyFormatInfo describes a copy format for menus
type CopyFormatInfo struct {
	Format CopyFormat
	Title  string
}

// CopyFormats lists the export formats in menu order
var CopyFormats = []CopyFormatInfo{
	{Format: FormatJSON, Title: "Copy Colors as JSON"},
	{Format: FormatCSS, Title: "Copy Colors as CSS Classes"},
	{Format: FormatCSSVariables, Title: "Copy Colors as CSS Variables"},
	{Format: FormatText, Title: "Copy Colors as Plain Text"},
}

// ParseCopyFormat validates a format name
func ParseCopyFormat(s string) (CopyFormat, error) {
	for _, info := range CopyFormats {
		if string(info.Format) == s {
			return info.Format, nil
		}
	}
	return "", fmt.Errorf("unknown copy format %q", s)
}

const coolorsBaseURL = "https://coolors.co/"

// ExportColors renders colors in the given format. It has no side effects.
func ExportColors(colors []string, format CopyFormat) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(nonNil(colors), "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to encode colors: %w", err)
		}
		return string(data), nil
	case FormatCSS:
		var b strings.Builder
		for i, c := range colors {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, ".color-%d {\n  background-color: %s;\n}", i+1, c)
		}
		return b.String(), nil
	case FormatCSSVariables:
		var b strings.Builder
		b.WriteString(":root {\n")
		for i, c := range colors {
			fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, c)
		}
		b.WriteString("}")
		return b.String(), nil
	case FormatText:
		return strings.Join(colors, "\n"), nil
	}
	return "", fmt.Errorf("unknown copy format %q", format)
}

// CoolorsURL builds a coolors.co link from the valid colors of a palette
func CoolorsURL(colors []string) string {
	codes := make([]string, 0, len(colors))
	for _, c := range FilterValidColors(colors) {
		codes = append(codes, strings.TrimPrefix(c, "#"))
	}
	if len(codes) == 0 {
		return coolorsBaseURL
	}
	return coolorsBaseURL + strings.Join(codes, "-")
}
