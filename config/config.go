// Package config loads qht filter parameters from defaults, an optional
// YAML file, and environment variables, then builds the requested filter
// variant. It is adapted from the teacher kit's xconfig package: the same
// `default:`/`env:` struct-tag vocabulary and functional-option loader
// shape, trimmed to the handful of scalar fields a filter actually needs
// (xconfig's generic recursive struct/slice/map walking has nothing to
// walk here).
//
// This is a configuration convenience, not the benchmark harness or
// stream driver spec.md places out of scope for the filter core — there
// is no cmd/ package here.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/qht"
	"github.com/vitalvas/qht/internal/xlog"
)

// Variant names Params.Variant accepts.
const (
	VariantQHTc   = "qhtc"
	VariantDQHTc  = "dqhtc"
	VariantDQQHTc = "dqqhtc"
)

// Params describes the parameters needed to build one filter. Tags follow
// the teacher kit's convention: `default` supplies the zero-value
// fallback, `env` the environment variable name (combined with the
// loader's prefix), `yaml` the file key.
type Params struct {
	Variant         string `yaml:"variant" env:"VARIANT" default:"qhtc"`
	MemorySizeBits  uint64 `yaml:"memory_size_bits" env:"MEMORY_SIZE_BITS" default:"65536"`
	NumBuckets      uint64 `yaml:"num_buckets" env:"NUM_BUCKETS" default:"4"`
	FingerprintBits uint64 `yaml:"fingerprint_bits" env:"FINGERPRINT_BITS" default:"8"`
}

// Options controls Load.
type Options struct {
	file      string
	envPrefix string
	logger    *slogLike
}

// Option configures a Load call.
type Option func(*Options)

// WithFile loads YAML-encoded parameters from filename before environment
// overrides are applied.
func WithFile(filename string) Option {
	return func(o *Options) { o.file = filename }
}

// WithEnv applies environment variable overrides named "<prefix>_<tag>",
// e.g. prefix "QHT" reads QHT_NUM_BUCKETS.
func WithEnv(prefix string) Option {
	return func(o *Options) { o.envPrefix = prefix }
}

// slogLike avoids importing log/slog into this file's option surface
// directly; see WithLogger.
type slogLike = interface {
	Debug(msg string, args ...any)
}

// WithLogger routes a debug-level summary of the resolved parameters to
// logger once Load completes. Typically xlog.New(xlog.Config{...}).
func WithLogger(logger slogLike) Option {
	return func(o *Options) { o.logger = &logger }
}

// Load fills p's zero fields from struct `default` tags, then overlays an
// optional YAML file, then optional environment variables, in that order
// — later sources win.
func Load(p *Params, opts ...Option) error {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}

	applyDefaults(p)

	if options.file != "" {
		data, err := os.ReadFile(options.file)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", options.file, err)
		}
		if err := yaml.Unmarshal(data, p); err != nil {
			return fmt.Errorf("config: parse %s: %w", options.file, err)
		}
	}

	if options.envPrefix != "" {
		if err := applyEnv(p, options.envPrefix); err != nil {
			return fmt.Errorf("config: environment overrides: %w", err)
		}
	}

	if options.logger != nil {
		(*options.logger).Debug("qht: resolved filter parameters",
			"variant", p.Variant,
			"memory_size_bits", p.MemorySizeBits,
			"num_buckets", p.NumBuckets,
			"fingerprint_bits", p.FingerprintBits,
		)
	}

	return nil
}

func applyDefaults(p *Params) {
	v := reflect.ValueOf(p).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := v.Field(i)
		if !field.IsZero() {
			continue
		}
		def, ok := t.Field(i).Tag.Lookup("default")
		if !ok {
			continue
		}
		setScalar(field, def)
	}
}

func applyEnv(p *Params, prefix string) error {
	v := reflect.ValueOf(p).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		envTag, ok := t.Field(i).Tag.Lookup("env")
		if !ok {
			continue
		}
		name := prefix + "_" + envTag
		raw, set := os.LookupEnv(name)
		if !set {
			continue
		}
		if err := setScalar(v.Field(i), raw); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func setScalar(field reflect.Value, raw string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q: %w", raw, err)
		}
		field.SetUint(n)
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}

// Build constructs the filter variant named by p.Variant. Unlike the core
// package's New* constructors, which panic on invalid parameters, Build
// recovers that panic into a returned error: it is the boundary between
// operator-supplied configuration (which can be wrong and should fail
// gracefully) and the programmer-supplied literals the core API expects.
func Build(p Params) (qht.Filter, error) {
	var (
		f   qht.Filter
		err error
	)

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("config: %v", r)
			}
		}()

		switch strings.ToLower(p.Variant) {
		case VariantQHTc:
			f = qht.NewQHTc(p.MemorySizeBits, p.NumBuckets, p.FingerprintBits)
		case VariantDQHTc:
			f = qht.NewDQHTc(p.MemorySizeBits, p.NumBuckets, p.FingerprintBits)
		case VariantDQQHTc:
			f = qht.NewDQQHTc(p.MemorySizeBits, p.NumBuckets, p.FingerprintBits)
		default:
			err = fmt.Errorf("config: unknown variant %q", p.Variant)
		}
	}()

	return f, err
}

// DefaultLogger returns the xlog logger Build's caller typically passes to
// WithLogger.
func DefaultLogger(level string) slogLike {
	return xlog.New(xlog.Config{Level: level, LogType: "text"})
}
