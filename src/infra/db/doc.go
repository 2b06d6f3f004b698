// Package db provides database connection and schema management.
//
// This package is responsible for:
//   - PostgreSQL connection pool initialization
//   - Connection health checks
//   - Embedded goose migrations for the jokes table
//
// Example usage:
//
//	pg, err := db.New(ctx, cfg.Database, log)
//	if err != nil {
//	    return err
//	}
//	defer pg.Close()
//
//	if _, err := db.NewMigrator(pg, log).Up(ctx); err != nil {
//	    return err
//	}
package db
