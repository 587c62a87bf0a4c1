// SPDX-License-Identifier: MIT

package recipe

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// hclHeader holds the blocks decoded before variables are known.
type hclHeader struct {
	Variables []*hclVariable `hcl:"variable,block"`
	Remain    hcl.Body       `hcl:",remain"`
}

type hclVariable struct {
	Name    string         `hcl:"name,label"`
	Default hcl.Expression `hcl:"default,optional"`
}

// hclBody is the network itself, decoded with var.* in scope.
type hclBody struct {
	Resources []*hclResource `hcl:"resource,block"`
	Targets   []*hclTarget   `hcl:"target,block"`
}

type hclResource struct {
	Name   string      `hcl:"name,label"`
	Rate   float64     `hcl:"rate"`
	Inputs []*hclInput `hcl:"input,block"`
}

type hclInput struct {
	Resource string  `hcl:"resource,label"`
	Rate     float64 `hcl:"rate"`
}

type hclTarget struct {
	Resource string  `hcl:"resource,label"`
	Rate     float64 `hcl:"rate"`
}

// ParseHCL decodes an HCL recipe. vars override `variable` defaults and may
// introduce variables the file does not declare.
func ParseHCL(src []byte, filename string, vars map[string]string) (*Book, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var header hclHeader
	if diags = gohcl.DecodeBody(file.Body, nil, &header); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	values, err := resolveVariables(filename, header.Variables, vars)
	if err != nil {
		return nil, err
	}
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{"var": cty.ObjectVal(values)},
	}

	var body hclBody
	if diags = gohcl.DecodeBody(header.Remain, evalCtx, &body); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	book := &Book{Source: filename, Resources: make([]Resource, 0, len(body.Resources))}
	for _, r := range body.Resources {
		res := Resource{Name: r.Name, Rate: r.Rate, Inputs: make([]Input, 0, len(r.Inputs))}
		for _, in := range r.Inputs {
			res.Inputs = append(res.Inputs, Input{Resource: in.Resource, Rate: in.Rate})
		}
		book.Resources = append(book.Resources, res)
	}
	for _, t := range body.Targets {
		if err = book.addTarget(Target{Resource: t.Resource, Rate: t.Rate}); err != nil {
			return nil, err
		}
	}

	return book, nil
}

// resolveVariables evaluates declared defaults and applies overrides.
func resolveVariables(filename string, declared []*hclVariable, overrides map[string]string) (map[string]cty.Value, error) {
	values := make(map[string]cty.Value, len(declared)+len(overrides))
	for _, v := range declared {
		if raw, ok := overrides[v.Name]; ok {
			values[v.Name] = ctyValue(raw)
			continue
		}
		def, diags := v.Default.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate default of variable %q in %s: %w", v.Name, filename, diags)
		}
		if def.IsNull() {
			return nil, fmt.Errorf("%s: variable %q: %w", filename, v.Name, ErrMissingVariable)
		}
		values[v.Name] = def
	}
	for name, raw := range overrides {
		if _, ok := values[name]; !ok {
			values[name] = ctyValue(raw)
		}
	}

	return values, nil
}

// ctyValue turns a command-line value into a number when it parses as one.
func ctyValue(raw string) cty.Value {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return cty.NumberFloatVal(f)
	}

	return cty.StringVal(raw)
}
