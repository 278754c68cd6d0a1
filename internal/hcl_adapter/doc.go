// Package hcl_adapter provides the concrete HCL implementation of the
// config.Loader interface. It is responsible for discovering grid files,
// parsing them, evaluating `grid` block expressions and binding the resulting
// cty values to the format-agnostic config model.
package hcl_adapter
