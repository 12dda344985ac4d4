package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"metadata-catalog/internal/config"
	"metadata-catalog/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "catalog_test"
)

// One Postgres container serves every integration suite in the process.
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite hands a migrated catalog database and a matching config to
// integration suites.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared Postgres container on first use.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = initSharedPGContainer() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer tears down Docker resources when the whole test run ends.
// Integration packages call it from their TestMain.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	log.Printf("Purging Docker container: %s", sharedResource.Container.Name)
	if err := sharedPool.Purge(sharedResource); err != nil {
		log.Printf("WARN: could not purge shared resource: %v", err)
	}
	sharedResource = nil
	sharedPool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite only empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties every catalog table in one statement so foreign keys never trip.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	tables := database.Tables()
	slices.Reverse(tables)

	quoted := make([]string, 0, len(tables))
	for _, t := range tables {
		quoted = append(quoted, `"`+t+`"`)
	}
	if err := s.DB.Exec(`TRUNCATE TABLE ` + strings.Join(quoted, ", ") + ` CASCADE`).Error; err != nil {
		log.Printf("WARN: could not truncate catalog tables: %v", err)
	}
}

func initSharedPGContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error { return ping(dsn) }); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	gdb, err := database.Initialize(dsn, nil)
	if err != nil {
		return fmt.Errorf("could not migrate test database: %w", err)
	}
	sharedDB = gdb
	sharedConfig = newTestConfig(dsn)

	log.Printf("Shared Postgres ready on %s", hostPort)
	return nil
}

func ping(dsn string) error {
	std, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer std.Close()
	return std.Ping()
}

// newTestConfig mirrors the defaults of config.Load for a server on dsn.
func newTestConfig(dsn string) *config.Config {
	return &config.Config{
		Environment:       "test",
		Port:              "8585",
		LogLevel:          "debug",
		DatabaseURL:       dsn,
		AllowedOrigins:    []string{"*"},
		DefaultPageSize:   10,
		MaxPageSize:       100,
		CatalogTimeoutSec: 5,
		PageSize:          2,
	}
}
