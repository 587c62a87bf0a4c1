// SPDX-License-Identifier: MIT

package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// varPrefix marks a YAML target value that refers to a variable.
const varPrefix = "var."

type yamlDoc struct {
	Variables map[string]float64 `yaml:"variables"`
	Resources []yamlResource     `yaml:"resources"`
	// Decoded as a node to keep declaration order and catch duplicates.
	Targets yaml.Node `yaml:"targets"`
}

type yamlResource struct {
	Name   string      `yaml:"name"`
	Rate   float64     `yaml:"rate"`
	Inputs []yamlInput `yaml:"inputs"`
}

type yamlInput struct {
	Resource string  `yaml:"resource"`
	Rate     float64 `yaml:"rate"`
}

// ParseYAML decodes a YAML recipe. Unknown fields are rejected. Target
// values may be numbers or "var.<name>" references resolved against the
// file's variables and vars (vars win).
func ParseYAML(src []byte, filename string, vars map[string]string) (*Book, error) {
	var doc yamlDoc
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", filename, err)
	}

	values := make(map[string]float64, len(doc.Variables)+len(vars))
	for k, v := range doc.Variables {
		values[k] = v
	}
	for k, raw := range vars {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: variable %q=%q is not a number: %w", filename, k, raw, ErrInvalidRecipe)
		}
		values[k] = f
	}

	book := &Book{Source: filename, Resources: make([]Resource, 0, len(doc.Resources))}
	for i, r := range doc.Resources {
		if r.Name == "" {
			return nil, fmt.Errorf("%s: resources[%d]: missing name: %w", filename, i, ErrInvalidRecipe)
		}
		res := Resource{Name: r.Name, Rate: r.Rate, Inputs: make([]Input, 0, len(r.Inputs))}
		for _, in := range r.Inputs {
			res.Inputs = append(res.Inputs, Input{Resource: in.Resource, Rate: in.Rate})
		}
		book.Resources = append(book.Resources, res)
	}

	if err := decodeYAMLTargets(book, &doc.Targets, values); err != nil {
		return nil, err
	}

	return book, nil
}

// decodeYAMLTargets walks the targets mapping in document order.
func decodeYAMLTargets(book *Book, node *yaml.Node, values map[string]float64) error {
	if node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s: line %d: targets must be a mapping: %w", book.Source, node.Line, ErrInvalidRecipe)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		rate, err := yamlRate(val, values)
		if err != nil {
			return fmt.Errorf("%s: line %d: target %q: %w", book.Source, val.Line, key.Value, err)
		}
		if err = book.addTarget(Target{Resource: key.Value, Rate: rate}); err != nil {
			return err
		}
	}

	return nil
}

// yamlRate resolves a scalar target value.
func yamlRate(val *yaml.Node, values map[string]float64) (float64, error) {
	if val.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("rate must be a scalar: %w", ErrInvalidRecipe)
	}
	if name, ok := strings.CutPrefix(val.Value, varPrefix); ok && val.ShortTag() == "!!str" {
		v, found := values[name]
		if !found {
			return 0, fmt.Errorf("variable %q: %w", name, ErrMissingVariable)
		}
		return v, nil
	}

	var rate float64
	if err := val.Decode(&rate); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRecipe, err)
	}

	return rate, nil
}
