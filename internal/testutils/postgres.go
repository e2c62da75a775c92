package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/issuehub/issuehub/internal/domain/attachment"
	"github.com/issuehub/issuehub/internal/domain/comment"
	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/domain/user"
)

// SetupPostgresForIntegration returns a migrated gorm handle against a
// throwaway database. Set TEST_DB_DSN to reuse an external server,
// otherwise a postgres container is started via testcontainers.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		return openAndMigrate(dsn), func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "issuehub",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/issuehub?sslmode=disable", host, port.Port())

	// retry until the server accepts connections
	var raw *sql.DB
	for i := 0; i < 10; i++ {
		raw, err = sql.Open("postgres", dsn)
		if err == nil {
			err = raw.Ping()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}
	_ = raw.Close()

	db := openAndMigrate(dsn)

	cleanup := func() {
		_ = pg.Terminate(ctx)
	}

	return db, cleanup
}

func openAndMigrate(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(
		&user.User{},
		&project.Project{},
		&project.Member{},
		&issue.Issue{},
		&comment.Comment{},
		&attachment.Attachment{},
	); err != nil {
		log.Fatal(err)
	}
	return db
}
