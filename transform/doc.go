// Package transform provides normalizers that run on a value before it is
// validated, typically through formvalidation.Normalize.
package transform
