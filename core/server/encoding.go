package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// document is the on-disk shape of a descriptor.
type document struct {
	Root   string      `json:"root" yaml:"root"`
	Server serverBlock `json:"server" yaml:"server"`
	Build  buildBlock  `json:"build" yaml:"build"`
}

type serverBlock struct {
	Port  int               `json:"port" yaml:"port"`
	// A pointer keeps nil rules distinct from an empty map in both formats.
	Proxy *map[string]string `json:"proxy" yaml:"proxy"`
}

type buildBlock struct {
	OutDir string `json:"outDir" yaml:"outDir"`
}

// Encode serializes the descriptor as json or yaml. Nil proxy rules encode
// as null and an empty map as {}, so Decode reproduces either exactly.
func Encode(d Descriptor, format string) ([]byte, error) {
	doc := document{
		Root:   d.Root,
		Server: serverBlock{Port: d.Port},
		Build:  buildBlock{OutDir: d.BuildOutputDir},
	}
	if d.ProxyRules != nil {
		rules := d.ProxyRules
		doc.Server.Proxy = &rules
	}

	switch normalizeFormat(format) {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode descriptor: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("encode descriptor: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode descriptor: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported descriptor format %q", format)
	}
}

// Decode parses a descriptor previously produced by Encode.
// Missing fields are left at their zero value; call Validate afterwards.
func Decode(data []byte, format string) (Descriptor, error) {
	var doc document

	switch normalizeFormat(format) {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Descriptor{}, fmt.Errorf("decode descriptor: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return Descriptor{}, fmt.Errorf("decode descriptor: %w", err)
		}
	default:
		return Descriptor{}, fmt.Errorf("unsupported descriptor format %q", format)
	}

	d := Descriptor{
		Root:           doc.Root,
		Port:           doc.Server.Port,
		BuildOutputDir: doc.Build.OutDir,
	}
	if doc.Server.Proxy != nil {
		d.ProxyRules = *doc.Server.Proxy
	}
	return d, nil
}

func normalizeFormat(format string) string {
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return format
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
