package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/applock-backend/internal/middlewares"
)

// executor returns the transaction bound to the context when one is present
// (set by middlewares.TxMiddleware), falling back to the plain connection.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// squash collapses a multi-line SQL query to a single line for logging.
func squash(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
