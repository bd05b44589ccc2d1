// Package protocol is generated from the schema in schema.go by wlgen; see
// zz_generated.go. Regenerate from the module root with:
//
//	go run ./cmd/wlgen
//
//go:generate go run ../cmd/wlgen -out zz_generated.go
package protocol
