// Package integration tests generated SQL against real databases.
package integration

import (
	"context"
	"database/sql"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mariadb"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Shared containers - lazily initialized
var (
	sharedPgContainer      *PostgresContainer
	sharedMariaDBContainer *MariaDBContainer

	pgOnce      sync.Once
	mariadbOnce sync.Once

	containersStarted = struct {
		pg      bool
		mariadb bool
	}{}
)

// TestMain tears down whatever containers the tests started.
func TestMain(m *testing.M) {
	code := m.Run()

	ctx := context.Background()

	if containersStarted.pg && sharedPgContainer != nil {
		if sharedPgContainer.conn != nil {
			_ = sharedPgContainer.conn.Close(ctx)
		}
		if sharedPgContainer.container != nil {
			_ = sharedPgContainer.container.Terminate(ctx)
		}
	}

	if containersStarted.mariadb && sharedMariaDBContainer != nil {
		if sharedMariaDBContainer.db != nil {
			_ = sharedMariaDBContainer.db.Close()
		}
		if sharedMariaDBContainer.container != nil {
			_ = sharedMariaDBContainer.container.Terminate(ctx)
		}
	}

	os.Exit(code)
}

// getPostgresContainer returns the shared PostgreSQL container, starting it if needed.
func getPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	pgOnce.Do(func() {
		ctx := context.Background()

		container, err := postgres.Run(ctx,
			"docker.io/postgres:16-alpine",
			postgres.WithDatabase("sqlgen_test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start postgres container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		conn, err := pgx.Connect(ctx, connStr)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}

		sharedPgContainer = &PostgresContainer{
			container: container,
			conn:      conn,
			connStr:   connStr,
		}
		containersStarted.pg = true
	})

	return sharedPgContainer
}

// getMariaDBContainer returns the shared MariaDB container, starting it if needed.
func getMariaDBContainer(t *testing.T) *MariaDBContainer {
	t.Helper()

	mariadbOnce.Do(func() {
		ctx := context.Background()

		container, err := mariadb.Run(ctx,
			"docker.io/mariadb:11",
			mariadb.WithDatabase("sqlgen_test"),
			mariadb.WithUsername("test"),
			mariadb.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("mariadbd: ready for connections").
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			log.Fatalf("Failed to start mariadb container: %v", err)
		}

		connStr, err := container.ConnectionString(ctx)
		if err != nil {
			log.Fatalf("Failed to get connection string: %v", err)
		}

		db, err := sql.Open("mysql", connStr)
		if err != nil {
			log.Fatalf("Failed to connect to mariadb: %v", err)
		}

		// Wait for connection to be ready
		for i := 0; i < 30; i++ {
			if err := db.Ping(); err == nil {
				break
			}
			time.Sleep(time.Second)
		}

		sharedMariaDBContainer = &MariaDBContainer{
			container: container,
			db:        db,
			connStr:   connStr,
		}
		containersStarted.mariadb = true
	})

	return sharedMariaDBContainer
}
