// Helpers for running the integration tests against a real MariaDB
// started through testcontainers. Tests call StartMariaDB and skip
// themselves when no Docker daemon is reachable.

package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/gazostheque/gazostheque/data"
)

const (
	mariadbImage        = "mariadb:11.4"
	mariadbRootPassword = "root-test"

	// MariaDBDatabase and friends match data/initdb/mariadb privileges.
	MariaDBDatabase = "gazostheque"
	MariaDBUser     = "gazostheque"
	MariaDBPassword = "gazostheque-test"
)

// MariaDB is a running database container plus its reachable address.
type MariaDB struct {
	Container testcontainers.Container
	Network   *testcontainers.DockerNetwork
	Host      string
	Port      nat.Port
}

// Terminate tears down the container and its network.
func (m *MariaDB) Terminate(t *testing.T) {
	ctx := context.Background()
	if m.Container != nil {
		if err := m.Container.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate MariaDB: %v", err)
		}
	}
	if m.Network != nil {
		if err := m.Network.Remove(ctx); err != nil {
			t.Logf("Failed to remove network: %v", err)
		}
	}
}

// StartMariaDB starts a MariaDB container and applies the embedded
// schema and privilege DDL. The test is skipped when Docker is not
// available.
func StartMariaDB(t *testing.T) *MariaDB {
	t.Helper()
	ctx := context.Background()

	nw, err := network.New(ctx)
	if err != nil {
		t.Skipf("Docker not available, skipping integration test: %v", err)
	}
	m := &MariaDB{Network: nw}

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		m.Terminate(t)
		t.Fatalf("Failed to create DB port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Name:         "gazostheque-mariadb-" + uuid.NewString()[:8],
			Image:        mariadbImage,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MARIADB_ROOT_PASSWORD": mariadbRootPassword,
				"MARIADB_DATABASE":      MariaDBDatabase,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(60 * time.Second),
			Networks:   []string{nw.Name},
		},
		Started: true,
	})
	if err != nil {
		m.Terminate(t)
		t.Skipf("Failed to start MariaDB container, skipping integration test: %v", err)
	}
	m.Container = container

	m.Host, err = container.Host(ctx)
	if err != nil {
		m.Terminate(t)
		t.Fatalf("Failed to resolve container host: %v", err)
	}
	m.Port, err = container.MappedPort(ctx, tcpPort)
	if err != nil {
		m.Terminate(t)
		t.Fatalf("Failed to resolve mapped port: %v", err)
	}

	if err := m.initDatabase(); err != nil {
		m.Terminate(t)
		t.Fatalf("Failed to initialize database: %v", err)
	}

	return m
}

// initDatabase applies the embedded DDL through the root account.
// multiStatements lets each embedded file run as one Exec.
func (m *MariaDB) initDatabase() error {
	dsn := fmt.Sprintf("root:%s@tcp(%s:%s)/%s?multiStatements=true",
		mariadbRootPassword, m.Host, m.Port.Port(), MariaDBDatabase)
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("connecting to MariaDB for setup: %w", err)
	}
	defer db.Close()

	// Wait for the connection to be really ready
	for i := 0; i < 30; i++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("MariaDB not ready after 30 seconds: %w", err)
	}

	if _, err := db.Exec(data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("applying table DDL: %w", err)
	}
	if _, err := db.Exec(data.InitdbMariaDBPrivileges); err != nil {
		return fmt.Errorf("applying privilege DDL: %w", err)
	}
	return nil
}
