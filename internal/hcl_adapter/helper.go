package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// singleBlock returns the only block of type typ inside the grid body, or nil
// when there is none. Every repeat is reported against the first declaration.
func singleBlock(blocks hcl.Blocks, typ, gridName string) (*hcl.Block, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	matching := blocks.OfType(typ)
	if len(matching) == 0 {
		return nil, nil
	}

	first := matching[0]
	for _, dup := range matching[1:] {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Duplicate %q block", typ),
			Detail:   fmt.Sprintf("Grid %q may declare one %q block; the first one is at %s.", gridName, typ, first.DefRange),
			Subject:  dup.DefRange.Ptr(),
			Context:  hcl.RangeBetween(first.DefRange, dup.DefRange).Ptr(),
		})
	}
	return first, diags
}

// diagnosticsError wraps diagnostics so that a Go error attached to one of
// them through Extra stays reachable with errors.Is and errors.As.
type diagnosticsError struct {
	hcl.Diagnostics
}

func (e diagnosticsError) Unwrap() []error {
	var errs []error
	for _, diag := range e.Diagnostics {
		if err, ok := hcl.DiagnosticExtra[error](diag); ok {
			errs = append(errs, err)
		}
	}
	return errs
}
