// Package config holds the conversion options and loads their defaults from
// an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-yaml"
)

// MaxFileSize limits the size of a config file.
const MaxFileSize = 1 << 20

const (
	DefaultSep     = ","
	DefaultTimeout = 30
)

var ErrNoColumns = errors.New("no column names specified and no header found")

// ConfigurationError reports options that cannot produce a table.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// Options controls a single conversion.
type Options struct {
	Path    string   // input: local path, s3://bucket/key or http(s) URL
	Header  bool     // first input line names the columns
	Sep     string   // field separator
	Columns []string // column names, required without Header
	Aligned bool     // pad cells so pipes line up
	Output  string   // empty writes to stdout
	Timeout int      // HTTP fetch timeout in seconds, 0 disables it
}

func Default() Options {
	return Options{
		Sep:     DefaultSep,
		Timeout: DefaultTimeout,
	}
}

// ParseColumns splits a comma-separated list of names. Blank input yields nil.
func ParseColumns(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// Validate returns a *ConfigurationError when o cannot be used.
func (o Options) Validate() error {
	if !o.Header && len(o.Columns) == 0 {
		return &ConfigurationError{Err: ErrNoColumns}
	}
	err := validation.ValidateStruct(&o,
		validation.Field(&o.Path, validation.Required.Error("input path is required")),
		validation.Field(&o.Sep, validation.Required.Error("separator must not be empty")),
		validation.Field(&o.Timeout, validation.Min(0).Error("timeout must not be negative")),
	)
	if err != nil {
		return &ConfigurationError{Err: err}
	}
	return nil
}

// Columns accepts either a YAML sequence or a comma-separated string.
type Columns []string

func (c *Columns) UnmarshalYAML(unmarshal func(any) error) error {
	var list []string
	if err := unmarshal(&list); err == nil {
		*c = list
		return nil
	}
	var raw string
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("columns: want a list or a comma-separated string: %w", err)
	}
	*c = ParseColumns(raw)
	return nil
}

// File is the YAML config file. Unset keys leave Options untouched.
type File struct {
	Header  *bool   `yaml:"header"`
	Sep     *string `yaml:"sep"`
	Columns Columns `yaml:"columns"`
	Aligned *bool   `yaml:"aligned"`
	Output  *string `yaml:"output"`
	Timeout *int    `yaml:"timeout"`
}

// LoadFile reads and strictly decodes the config file at path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("read config: %w", err)}
	}
	return ParseFile(data)
}

// ParseFile decodes a config file; unknown keys are rejected.
func ParseFile(data []byte) (*File, error) {
	if len(data) > MaxFileSize {
		return nil, &ConfigurationError{Err: fmt.Errorf("config exceeds %d bytes", MaxFileSize)}
	}
	var f File
	if len(strings.TrimSpace(string(data))) == 0 {
		return &f, nil
	}
	if err := yaml.UnmarshalWithOptions(data, &f, yaml.Strict()); err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("parse config: %w", err)}
	}
	return &f, nil
}

// Apply copies every key set in f onto o.
func (f *File) Apply(o *Options) {
	if f.Header != nil {
		o.Header = *f.Header
	}
	if f.Sep != nil {
		o.Sep = *f.Sep
	}
	if f.Columns != nil {
		o.Columns = []string(f.Columns)
	}
	if f.Aligned != nil {
		o.Aligned = *f.Aligned
	}
	if f.Output != nil {
		o.Output = *f.Output
	}
	if f.Timeout != nil {
		o.Timeout = *f.Timeout
	}
}
