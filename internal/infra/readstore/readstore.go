// Package readstore holds the read-side adapters backing the query
// services. Each store is bound to a connection at construction, which can
// be the pool or an open transaction.
package readstore

import (
	"github.com/Masterminds/squirrel"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
