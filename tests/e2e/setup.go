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

	"boat-reservation/cmd/bootstrap"
	"boat-reservation/cmd/bootstrap/components"
	"boat-reservation/internal/domain/user"
	"boat-reservation/internal/infra/db"
	"boat-reservation/internal/pkg/config"
	"boat-reservation/tests/common/authtest"
	"boat-reservation/tests/common/dbtest"

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

const (
	pgUser     = "test"
	pgPassword = "testpass"
	schemaFile = "migrations/001_initial_schema.sql"
)

var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
)

// SharedSuite boots one app per suite on its own database inside a shared
// PostgreSQL container. Every subtest starts from empty tables.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	host, port := startPostgres(t)
	dbConfig := createDatabase(t, host, port)

	pool, _, err := db.Connect(dbConfig)
	require.NoError(t, err, "データベース接続に失敗")
	require.NoError(t, applySchema(pool), "スキーマの適用に失敗")

	s.DB = pool
	s.Router, s.Config = startApp(t, pool, dbConfig)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "テーブルのリセットに失敗")
}

// Today is the current calendar day in the app time zone as a midnight UTC
// value, matching how slot dates are stored.
func (s *SharedSuite) Today() time.Time {
	loc, err := s.Config.App.Location()
	s.Require().NoError(err)
	y, m, d := time.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *SharedSuite) Token(userID uuid.UUID, role user.Role) string {
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), userID, role)
}

func startPostgres(t *testing.T) (string, nat.Port) {
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		var err error
		pgContainer, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=256m"},
				// durability is irrelevant for throwaway data
				Cmd: []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off"},
				WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
					return adminDSN(host, port)
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"purpose": "boat-reservation-e2e"},
			},
			Started: true,
		})
		require.NoError(t, err, "PostgreSQLコンテナの起動に失敗")
	})
	require.NotNil(t, pgContainer, "PostgreSQLコンテナが起動していません")

	ctx := context.Background()
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	return host, port
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// createDatabase creates a database private to the calling suite and drops
// it on cleanup.
func createDatabase(t *testing.T, host string, port nat.Port) config.DBConfig {
	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	exec := func(stmt string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN(host, port))
		if err != nil {
			return err
		}
		defer admin.Close()
		_, err = admin.Exec(ctx, stmt)
		return err
	}

	var err error
	for attempt := 1; attempt <= 5; attempt++ {
		if err = exec("CREATE DATABASE " + name); err == nil {
			break
		}
		backoff := time.Duration(attempt) * 500 * time.Millisecond
		slog.Warn("create e2e database", "attempt", attempt, "retry_in", backoff, "error", err)
		time.Sleep(backoff)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		if err := exec("DROP DATABASE IF EXISTS " + name + " WITH (FORCE)"); err != nil {
			slog.Warn("drop e2e database", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     host,
		Port:     port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Asia/Tokyo",
	}
}

// applySchema runs the schema file, looked up from the package directory
// upwards since go test runs inside each package.
func applySchema(pool *pgxpool.Pool) error {
	var (
		sql []byte
		err error
	)
	dir := "."
	for range 4 {
		if sql, err = os.ReadFile(filepath.Join(dir, schemaFile)); err == nil {
			break
		}
		dir = filepath.Join("..", dir)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", schemaFile, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("apply %s: %w", schemaFile, err)
	}
	return nil
}

// startApp wires the production modules around the test pool and config.
// The assignment scheduler stays off; suites trigger runs over HTTP.
func startApp(t *testing.T, pool *pgxpool.Pool, dbConfig config.DBConfig) (*gin.Engine, config.Config) {
	var (
		router *gin.Engine
		cfg    config.Config
	)
	app := fx.New(
		fx.Provide(
			func() *pgxpool.Pool { return pool },
			func() config.Config {
				c := config.NewTestConfig()
				c.DB = dbConfig
				c.Assignment.Enabled = false
				return c
			},
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.MetricsModule,
		bootstrap.MessagingModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router, &cfg),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "アプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop e2e app", "error", err)
		}
		pool.Close()
	})
	return router, cfg
}
