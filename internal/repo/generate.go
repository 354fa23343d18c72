// Package repo holds the ent-generated data access client. The generated
// code is not committed; run go generate before building.
//
//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert,intercept ../schema
package repo
