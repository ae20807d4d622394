package database

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	timeprovider "github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/time"
)

// TestDBManager wraps a Manager pointed at a throwaway database. Tests get an
// in-memory SQLite database per test name unless TEST_DB_DRIVER=postgres, in
// which case the TEST_DB_* variables describe the server.
type TestDBManager struct {
	Manager      *Manager
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates the manager; call Connect before using it
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	conf := &Config{
		Driver:          envString("TEST_DB_DRIVER", DriverSQLite),
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      time.Second,
	}

	switch conf.Driver {
	case DriverPostgres:
		conf.Host = envString("TEST_DB_HOST", "localhost")
		conf.Port = envInt("TEST_DB_PORT", 5432)
		conf.Username = envString("TEST_DB_USERNAME", "postgres")
		conf.Password = envString("TEST_DB_PASSWORD", "postgres")
		conf.Database = envString("TEST_DB_DATABASE", "webpay_reconciler_test")
		conf.SSLMode = envString("TEST_DB_SSL_MODE", "disable")
		conf.MaxOpenConns = 10
		conf.MaxIdleConns = 5
	default:
		// shared cache keeps the memory database alive across pool connections
		name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
		conf.Database = fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	}

	clock := timeprovider.NewRealTimeProvider()
	return &TestDBManager{
		Manager:      NewManager(conf, logger, clock),
		TimeProvider: clock,
	}
}

// Connect opens the database and closes it when the test ends
func (m *TestDBManager) Connect(t *testing.T) {
	t.Helper()

	if _, err := m.Manager.Connect(context.Background()); err != nil {
		t.Fatalf("connect test database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("close test database: %v", err)
		}
	})
}

// SetupTestDB starts from empty tables and applies every schema step
func (m *TestDBManager) SetupTestDB(t *testing.T) {
	t.Helper()

	db := m.Manager.DB()
	for _, table := range []string{"webpay_transactions", "webpay_schema_versions"} {
		if err := db.Exec("DROP TABLE IF EXISTS " + table).Error; err != nil {
			t.Fatalf("drop %s: %v", table, err)
		}
	}
	if err := m.Manager.MigrationManager().MigrateAll(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}
