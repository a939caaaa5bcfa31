package process

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/aretw0/ringctl/pkg/ring"
	"github.com/aretw0/ringctl/pkg/template"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Environment variables that override profile fields.
const (
	EnvTerminal   = "RINGCTL_TERMINAL"
	EnvMkfifo     = "RINGCTL_MKFIFO"
	EnvCommand    = "RINGCTL_COMMAND"
	EnvFifoPrefix = "RINGCTL_FIFO_PREFIX"
	EnvLogLevel   = "RINGCTL_LOGLEVEL"
	EnvReuseFifos = "RINGCTL_REUSE_FIFOS"
)

// DefaultLogLevel is handed to nodes when none is given on the command line.
const DefaultLogLevel = "trace"

// Profile describes how a ring is provisioned on this host.
type Profile struct {
	Terminal   []string `mapstructure:"terminal" yaml:"terminal" json:"terminal" toml:"terminal"`
	Mkfifo     []string `mapstructure:"mkfifo" yaml:"mkfifo" json:"mkfifo" toml:"mkfifo"`
	Command    string   `mapstructure:"command" yaml:"command" json:"command" toml:"command"`
	FifoPrefix string   `mapstructure:"fifo_prefix" yaml:"fifo_prefix" json:"fifo_prefix" toml:"fifo_prefix"`
	LogLevel   string   `mapstructure:"loglevel" yaml:"loglevel" json:"loglevel" toml:"loglevel"`
	ReuseFifos bool     `mapstructure:"reuse_fifos" yaml:"reuse_fifos" json:"reuse_fifos" toml:"reuse_fifos"`
}

// DefaultProfile matches the stock robot launch: x-terminal-emulator, mkfifo and cargo.
func DefaultProfile() Profile {
	return Profile{
		Terminal:   []string{"x-terminal-emulator", "-e"},
		Mkfifo:     []string{"mkfifo"},
		Command:    template.DefaultCommand,
		FifoPrefix: ring.DefaultFifoPrefix,
		LogLevel:   DefaultLogLevel,
	}
}

// LoadProfile reads a profile file (YAML, JSON or TOML by extension).
// A missing file yields the default profile.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("failed to read profile: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return p, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return p, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return p, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	var loaded Profile
	if err := decodeProfile(raw, &loaded); err != nil {
		return p, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	p.merge(loaded)
	return p, nil
}

func decodeProfile(raw map[string]any, out *Profile) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       fieldsHook,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}

// fieldsHook lets argv fields be written as a single shell-like string.
func fieldsHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.String && to == reflect.TypeOf([]string(nil)) {
		return strings.Fields(reflect.ValueOf(data).String()), nil
	}
	return data, nil
}

// merge overlays the non-zero fields of o.
func (p *Profile) merge(o Profile) {
	if len(o.Terminal) > 0 {
		p.Terminal = o.Terminal
	}
	if len(o.Mkfifo) > 0 {
		p.Mkfifo = o.Mkfifo
	}
	if o.Command != "" {
		p.Command = o.Command
	}
	if o.FifoPrefix != "" {
		p.FifoPrefix = o.FifoPrefix
	}
	if o.LogLevel != "" {
		p.LogLevel = o.LogLevel
	}
	if o.ReuseFifos {
		p.ReuseFifos = true
	}
}

// ApplyEnv overrides profile fields from RINGCTL_* variables.
// Argv-valued variables are split on whitespace.
func (p *Profile) ApplyEnv(lookup func(string) (string, bool)) error {
	var o Profile
	if v, ok := lookup(EnvTerminal); ok {
		o.Terminal = strings.Fields(v)
	}
	if v, ok := lookup(EnvMkfifo); ok {
		o.Mkfifo = strings.Fields(v)
	}
	if v, ok := lookup(EnvCommand); ok {
		o.Command = v
	}
	if v, ok := lookup(EnvFifoPrefix); ok {
		o.FifoPrefix = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		o.LogLevel = strings.TrimSpace(v)
	}
	p.merge(o)

	if v, ok := lookup(EnvReuseFifos); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvReuseFifos, err)
		}
		p.ReuseFifos = b
	}
	return nil
}

// Validate rejects profiles that cannot launch anything.
func (p Profile) Validate() error {
	if len(p.Terminal) == 0 {
		return fmt.Errorf("profile: terminal command is empty")
	}
	if len(p.Mkfifo) == 0 {
		return fmt.Errorf("profile: mkfifo command is empty")
	}
	if p.FifoPrefix == "" {
		return fmt.Errorf("profile: fifo_prefix is empty")
	}
	if err := template.Check(p.Command); err != nil {
		return fmt.Errorf("profile: command: %w", err)
	}
	return nil
}
