// SPDX-License-Identifier: MIT

package menufile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/menutree/menu"
)

// Format names a document encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseFormat maps a case-insensitive name ("json", "yaml", "yml", "toml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// FormatFromPath picks the Format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// DecodeEntry reads one Entry document in format f from r.
func DecodeEntry[T any](r io.Reader, f Format) (Entry[T], error) {
	var e Entry[T]
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&e)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&e)
	case TOML:
		err = toml.NewDecoder(r).Decode(&e)
	default:
		return e, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return e, fmt.Errorf("menufile: decode %s: %w", f, err)
	}

	return e, nil
}

// EncodeEntry writes e to w in format f.
func EncodeEntry[T any](w io.Writer, e Entry[T], f Format) error {
	var err error
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(e)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(e); err == nil {
			err = enc.Close()
		}
	case TOML:
		err = toml.NewEncoder(w).Encode(e)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("menufile: encode %s: %w", f, err)
	}

	return nil
}

// Decode reads a document in format f from r and builds a menu tree from it.
func Decode[T any](r io.Reader, f Format, opts ...menu.Option) (*menu.Menu[T], error) {
	e, err := DecodeEntry[T](r, f)
	if err != nil {
		return nil, err
	}

	return ToMenu(e, opts...)
}

// Encode writes the subtree rooted at m to w as a document in format f.
func Encode[T any](w io.Writer, m *menu.Menu[T], f Format) error {
	return EncodeEntry(w, FromMenu(m), f)
}
