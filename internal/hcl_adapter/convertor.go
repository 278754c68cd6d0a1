package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/spiralgrid/internal/spiral"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// rowsType is the cty type every `rows` expression is converted to before it
// is bound to Go. Tuples of tuples, as written in HCL literals, convert to it.
var rowsType = cty.List(cty.List(cty.Number))

// decodeSize evaluates a `size` expression into a whole number in
// [0, spiral.MaxSize]. A range failure carries its *spiral.SizeError in the
// diagnostic's Extra field.
func decodeSize(expr hcl.Expression, evalCtx *hcl.EvalContext) (int, hcl.Diagnostics) {
	val, diags := evaluate(expr, evalCtx, cty.Number)
	if diags.HasErrors() {
		return 0, diags
	}

	var size int
	if err := gocty.FromCtyValue(val, &size); err != nil {
		return 0, diagFor(expr, "Invalid size", err.Error())
	}
	if err := spiral.CheckSize(size); err != nil {
		detail := "The grid size must not be negative."
		if size > spiral.MaxSize {
			detail = fmt.Sprintf("The grid size must not exceed %d.", spiral.MaxSize)
		}
		diags := diagFor(expr, "Invalid size", detail)
		diags[0].Extra = err
		return 0, diags
	}
	return size, nil
}

// decodeRows evaluates a `rows` expression into a list of number rows.
func decodeRows(expr hcl.Expression, evalCtx *hcl.EvalContext) ([][]float64, hcl.Diagnostics) {
	val, diags := evaluate(expr, evalCtx, rowsType)
	if diags.HasErrors() {
		return nil, diags
	}

	rows := [][]float64{}
	if err := gocty.FromCtyValue(val, &rows); err != nil {
		return nil, diagFor(expr, "Invalid rows", err.Error())
	}
	return rows, nil
}

// evaluate computes an expression's value and converts it to the wanted type.
// Null and unknown results are rejected.
func evaluate(expr hcl.Expression, evalCtx *hcl.EvalContext, want cty.Type) (cty.Value, hcl.Diagnostics) {
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if val.IsNull() {
		return cty.NilVal, diagFor(expr, "Missing value", "The value must not be null.")
	}
	if !val.IsWhollyKnown() {
		return cty.NilVal, diagFor(expr, "Unknown value", "The value must be known when the file is loaded.")
	}

	converted, err := convert.Convert(val, want)
	if err != nil {
		return cty.NilVal, diagFor(expr, "Incorrect value type", "Expected "+want.FriendlyName()+": "+err.Error()+".")
	}
	return converted, nil
}

func diagFor(expr hcl.Expression, summary, detail string) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  expr.Range().Ptr(),
	}}
}
