package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext returns the evaluation context for grid expressions. There
// are no variables; a small set of collection functions lets users compute
// rows instead of spelling them out.
func newEvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"chunklist": stdlib.ChunklistFunc,
			"concat":    stdlib.ConcatFunc,
			"flatten":   stdlib.FlattenFunc,
			"length":    stdlib.LengthFunc,
			"max":       stdlib.MaxFunc,
			"min":       stdlib.MinFunc,
			"range":     stdlib.RangeFunc,
			"reverse":   stdlib.ReverseListFunc,
		},
	}
}
