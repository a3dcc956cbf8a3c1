// Package sqlc holds the query layer generated from db/queries against db/schema.sql.
// Run `go generate ./internal/infra/sqlc` (or `make sqlc`) after editing either.
package sqlc

//go:generate go run github.com/sqlc-dev/sqlc/cmd/sqlc@v1.29.0 generate -f ../../../sqlc.yaml
