package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// parseHCL parses the HCL configuration dialect:
//
//	project "alpha" {
//	  path = "${HOME}/src/alpha"
//	}
func parseHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %w", diags)
	}

	bodyContent, _, diags := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "project", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file: %w", diags)
	}

	cfg := &Config{Paths: make(map[string]string)}

	for _, block := range bodyContent.Blocks {
		if len(block.Labels) == 0 {
			continue
		}
		name := block.Labels[0]

		attrs, attrDiags := block.Body.JustAttributes()
		if attrDiags.HasErrors() {
			return nil, fmt.Errorf("invalid project block %q: %w", name, attrDiags)
		}

		pathAttr, hasPath := attrs["path"]
		if !hasPath {
			return nil, fmt.Errorf("project block %q is missing the path attribute", name)
		}

		pathVal, valDiags := pathAttr.Expr.Value(&hcl.EvalContext{})
		if valDiags.HasErrors() {
			return nil, fmt.Errorf("invalid path in project block %q: %w", name, valDiags)
		}
		if pathVal.Type() != cty.String {
			return nil, fmt.Errorf("path in project block %q must be a string", name)
		}

		cfg.Paths[name] = pathVal.AsString()
	}

	return cfg, nil
}
