package telemetry

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type startTimeKey struct{ plugin string }

// registerTimedCallbacks wraps every GORM processor with a before callback that
// stamps the start time and an after callback that receives the elapsed time
// and the SQL operation. Callbacks are named "{plugin}:before_*" and "{plugin}:after_*".
func registerTimedCallbacks(db *gorm.DB, plugin string, after func(tx *gorm.DB, operation string, elapsed time.Duration)) error {
	key := startTimeKey{plugin: plugin}
	before := func(tx *gorm.DB) {
		ctx := tx.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}
		tx.Statement.Context = context.WithValue(ctx, key, time.Now())
	}
	afterFor := func(operation string) func(*gorm.DB) {
		return func(tx *gorm.DB) {
			var elapsed time.Duration
			if tx.Statement.Context != nil {
				if start, ok := tx.Statement.Context.Value(key).(time.Time); ok {
					elapsed = time.Since(start)
				}
			}
			op := operation
			if op == "" {
				op = detectOperationType(tx.Statement.SQL.String())
			}
			after(tx, op, elapsed)
		}
	}

	cb := db.Callback()
	return errors.Join(
		cb.Create().Before("gorm:create").Register(plugin+":before_create", before),
		cb.Create().After("gorm:create").Register(plugin+":after_create", afterFor("INSERT")),
		cb.Query().Before("gorm:query").Register(plugin+":before_query", before),
		cb.Query().After("gorm:query").Register(plugin+":after_query", afterFor("SELECT")),
		cb.Update().Before("gorm:update").Register(plugin+":before_update", before),
		cb.Update().After("gorm:update").Register(plugin+":after_update", afterFor("UPDATE")),
		cb.Delete().Before("gorm:delete").Register(plugin+":before_delete", before),
		cb.Delete().After("gorm:delete").Register(plugin+":after_delete", afterFor("DELETE")),
		cb.Row().Before("gorm:row").Register(plugin+":before_row", before),
		cb.Row().After("gorm:row").Register(plugin+":after_row", afterFor("")),
		cb.Raw().Before("gorm:raw").Register(plugin+":before_raw", before),
		cb.Raw().After("gorm:raw").Register(plugin+":after_raw", afterFor("")),
	)
}

// detectOperationType returns the leading SQL verb, or UNKNOWN.
func detectOperationType(sql string) string {
	sql = strings.ToUpper(strings.TrimSpace(sql))
	for _, verb := range []string{"SELECT", "INSERT", "UPDATE", "DELETE"} {
		if strings.HasPrefix(sql, verb) {
			return verb
		}
	}
	return "UNKNOWN"
}
