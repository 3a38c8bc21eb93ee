package booking

import (
	"github.com/haeum-studio/booking-service/pkg/dbmetrics"
)

// DBExecutor is the query surface the repository runs on; satisfied by
// *sql.DB, *sql.Tx and the instrumented *dbmetrics.DB.
type DBExecutor = dbmetrics.DBExecutor
