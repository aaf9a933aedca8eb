// Package repo holds the ent-generated data access client.
//
// The generated sources are not committed; run `go generate ./...` (or
// `make generate`) after editing anything under internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert,sql/lock ../schema
