package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the retry loop whether a failed database
// operation is worth another attempt.
type ErrorClassification int

const (
	// NonRetryable covers constraint violations, data exceptions, syntax
	// errors and anything unrecognised. The operation is abandoned.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient failures such as dropped connections,
	// serialization failures and deadlock rollbacks.
	Retryable
)

// PostgresErrorClassifier maps pgconn error codes to an
// [ErrorClassification]. It implements [ErrorClassificator].
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify inspects err for a *pgconn.PgError and decides by its SQLSTATE
// code (see the errcodes appendix of the PostgreSQL manual). Connection
// exceptions (class 08), transaction rollbacks (class 40) and "cannot
// connect now" (57P03) are retryable; everything else, including non-pg
// errors and nil, is not.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
