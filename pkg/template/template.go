// Package template renders the per-node launch command.
//
// Placeholders are written as {NAME}. Doubled braces ({{ and }}) render as a
// literal brace, so shell snippets such as ${HOME} must be written ${{HOME}}.
package template

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/ringctl/pkg/ring"
)

// Placeholder names recognized in a node command template.
const (
	KeyLogLevel = "LOGLVL"
	KeyArgs     = "ARGS"
	KeyIn       = "IN"
	KeyOut      = "OUT"
	KeyName     = "NAME"
)

// DefaultCommand runs one robot node through cargo inside a shell.
const DefaultCommand = `sh -c "RUST_LOG=robot={LOGLVL} cargo run {ARGS} -- --input {IN} --output {OUT} --name {NAME}"`

var (
	// ErrUnknownPlaceholder is returned when a template names a key with no value.
	ErrUnknownPlaceholder = errors.New("unknown placeholder")
	// ErrMalformedTemplate is returned for unbalanced braces.
	ErrMalformedTemplate = errors.New("malformed template")
)

// Keys lists every placeholder a node command may use.
func Keys() []string {
	return []string{KeyLogLevel, KeyArgs, KeyIn, KeyOut, KeyName}
}

// Render substitutes every {KEY} in tmpl with values[KEY].
func Render(tmpl string, values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(tmpl))

	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		switch c {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated '{' at offset %d", ErrMalformedTemplate, i)
			}
			key := tmpl[i+1 : i+1+end]
			if strings.ContainsRune(key, '{') {
				return "", fmt.Errorf("%w: nested '{' at offset %d", ErrMalformedTemplate, i)
			}
			val, ok := values[key]
			if !ok {
				return "", fmt.Errorf("%w: {%s}", ErrUnknownPlaceholder, key)
			}
			b.WriteString(val)
			i += end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: single '}' at offset %d", ErrMalformedTemplate, i)
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// NodeValues builds the substitution map for one node of the ring.
func NodeValues(loglevel string, extraArgs []string, link ring.Link) map[string]string {
	return map[string]string{
		KeyLogLevel: loglevel,
		KeyArgs:     strings.Join(extraArgs, " "),
		KeyIn:       link.In,
		KeyOut:      link.Out,
		KeyName:     strconv.Itoa(link.Name),
	}
}

// Check reports whether tmpl would render for any node.
func Check(tmpl string) error {
	sample := make(map[string]string, len(Keys()))
	for _, k := range Keys() {
		sample[k] = k
	}
	_, err := Render(tmpl, sample)
	return err
}
