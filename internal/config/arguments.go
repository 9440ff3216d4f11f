package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-appium-service/models"
	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"
)

// Arguments are extra server flags as command line tokens, e.g.
// ["--relaxed-security", "--base-path", "/wd/hub"].
//
// From text (environment, flags) they are split with shell quoting rules.
// Config files may give either a single string or a list of tokens.
type Arguments []string

// ArgumentPair is one flag with its optional value.
type ArgumentPair struct {
	Flag  models.GeneralServerFlag
	Value string
}

// UnmarshalText splits text with shell quoting rules.
func (a *Arguments) UnmarshalText(text []byte) error {
	tokens, err := shellquote.Split(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	*a = tokens
	return nil
}

func (a *Arguments) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		*a = nil
		return nil
	case string:
		return a.UnmarshalText([]byte(value))
	default:
		var tokens []string
		if err := json.Unmarshal(b, &tokens); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		}
		*a = tokens
		return nil
	}
}

func (a *Arguments) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return a.UnmarshalText([]byte(node.Value))
	case yaml.SequenceNode:
		var tokens []string
		if err := node.Decode(&tokens); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
		}
		*a = tokens
		return nil
	default:
		return fmt.Errorf("%w: line %d: expected a string or a list", ErrInvalidArguments, node.Line)
	}
}

// String renders the tokens back into a shell-quoted string.
func (a Arguments) String() string {
	return shellquote.Join(a...)
}

// Pairs groups the tokens into flags and values. A token starting with
// "--" starts a new flag; the token after it, if it is not a flag itself,
// is its value.
func (a Arguments) Pairs() ([]ArgumentPair, error) {
	pairs := make([]ArgumentPair, 0, len(a))

	for i := 0; i < len(a); i++ {
		token := a[i]
		if !isFlag(token) {
			return nil, fmt.Errorf("%w: value %q does not follow a flag", ErrInvalidArguments, token)
		}

		pair := ArgumentPair{Flag: models.GeneralServerFlag(token)}
		if i+1 < len(a) && !isFlag(a[i+1]) {
			pair.Value = a[i+1]
			i++
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

func isFlag(token string) bool {
	return strings.HasPrefix(token, "--") && len(token) > 2
}
