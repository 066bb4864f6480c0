//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"bookstore-api/cmd/bootstrap"
	"bookstore-api/cmd/bootstrap/components"
	"bookstore-api/internal/infra/db"
	"bookstore-api/internal/pkg/config"
	"bookstore-api/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func setupE2EEnvironment(t *testing.T) (*pgxpool.Pool, *gin.Engine, config.Config) {
	postgresInfo := startContainers(t)

	pool, dbConfig := prepareDatabase(t, postgresInfo)

	router, cfg, app := buildE2EApp(pool, dbConfig)
	require.NotNil(t, router, "failed to set up router")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	return pool, router, cfg
}

func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read postgres container info")

	return postgresInfo
}

// prepareDatabase creates one throwaway database per test process so suites
// can run in parallel against the shared container.
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) (*pgxpool.Pool, config.DBConfig) {
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "failed to open admin connection")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		if attempts > 0 {
			waitTime := time.Duration(500+attempts*500) * time.Millisecond
			time.Sleep(min(waitTime, 3*time.Second))
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
		slog.Warn("retrying test database creation", "attempt", attempts+1, "error", createErr.Error())
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("failed to open cleanup connection", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		if _, err := cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	dbConfig := config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "failed to connect to test database")
	require.NotNil(t, pool)

	require.NoError(t, applyMigrations(t, dbConfig), "failed to apply migrations")

	return pool, dbConfig
}

func applyMigrations(t *testing.T, dbConfig config.DBConfig) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	pool, _, err := db.Connect(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	migrationFiles := []string{
		"migrations/001_initial_schema.sql",
	}

	for _, file := range migrationFiles {
		// Resolve the path relative to the package dir `go test` runs in.
		var (
			sqlContent []byte
			readErr    error
		)
		candidates := []string{
			file,
			filepath.Join("..", file),
			filepath.Join("..", "..", file),
			filepath.Join("..", "..", "..", file),
		}
		for _, cand := range candidates {
			sqlContent, readErr = os.ReadFile(cand)
			if readErr == nil {
				file = cand
				break
			}
		}
		if readErr != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, readErr)
		}

		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}

	return nil
}

func buildE2EApp(pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testDBModule := fx.Module("testdb",
		fx.Provide(func() *pgxpool.Pool { return pool }),
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			testConfig := config.NewTestConfig()
			testConfig.DB = dbConfig
			return testConfig
		}),
	)

	app := fx.New(
		testDBModule,
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("failed to start fx app: %v", err))
	}

	return router, cfg, app
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=512m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Name:   "postgres-e2e",
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start postgres container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := postgresTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate postgres container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	db, router, cfg := setupE2EEnvironment(s.T())
	s.DB = db
	s.Router = router
	s.Config = cfg
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
}
