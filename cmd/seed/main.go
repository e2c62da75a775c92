// Command seed populates the database with demo data from a YAML fixture.
//
// Run with: go run ./cmd/seed [fixture.yaml]
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"

	"github.com/issuehub/issuehub/internal/config"
	"github.com/issuehub/issuehub/internal/config/db"
	"github.com/issuehub/issuehub/internal/domain/attachment"
	"github.com/issuehub/issuehub/internal/domain/comment"
	"github.com/issuehub/issuehub/internal/domain/issue"
	"github.com/issuehub/issuehub/internal/domain/project"
	"github.com/issuehub/issuehub/internal/domain/user"
	"gorm.io/gorm"
)

type fixture struct {
	Users []struct {
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"users"`
	Projects []struct {
		Name        string `yaml:"name"`
		Key         string `yaml:"key"`
		Description string `yaml:"description"`
		Members     []struct {
			Email string `yaml:"email"`
			Role  string `yaml:"role"`
		} `yaml:"members"`
		Issues []struct {
			Title       string `yaml:"title"`
			Description string `yaml:"description"`
			Status      string `yaml:"status"`
			Priority    string `yaml:"priority"`
			Reporter    string `yaml:"reporter"`
			Assignee    string `yaml:"assignee"`
			Comments    []struct {
				Author string `yaml:"author"`
				Body   string `yaml:"body"`
			} `yaml:"comments"`
		} `yaml:"issues"`
	} `yaml:"projects"`
}

func main() {
	path := "cmd/seed/seed.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read fixture: %v", err)
	}
	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		log.Fatalf("Failed to parse fixture: %v", err)
	}

	config.LoadConfig()
	db.Init()

	if err := db.DB.AutoMigrate(
		&user.User{},
		&project.Project{},
		&project.Member{},
		&issue.Issue{},
		&comment.Comment{},
		&attachment.Attachment{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.DB.Transaction(func(tx *gorm.DB) error {
		return load(tx, fx)
	}); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	fmt.Println("Database seeded successfully.")
	for _, u := range fx.Users {
		fmt.Printf("  %s / %s\n", u.Email, u.Password)
	}
}

func load(tx *gorm.DB, fx fixture) error {
	usersByEmail := make(map[string]user.User, len(fx.Users))
	for _, u := range fx.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		row := user.User{Name: u.Name, Email: u.Email, PasswordHash: string(hash)}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("create user %s: %w", u.Email, err)
		}
		usersByEmail[u.Email] = row
	}

	lookup := func(email string) (user.User, error) {
		u, ok := usersByEmail[email]
		if !ok {
			return user.User{}, fmt.Errorf("unknown user %q in fixture", email)
		}
		return u, nil
	}

	for _, p := range fx.Projects {
		row := project.Project{Name: p.Name, Key: p.Key, Description: p.Description}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("create project %s: %w", p.Key, err)
		}

		for _, m := range p.Members {
			u, err := lookup(m.Email)
			if err != nil {
				return err
			}
			role := project.Role(m.Role)
			if !role.Valid() {
				return fmt.Errorf("invalid role %q for %s", m.Role, m.Email)
			}
			member := project.Member{ProjectID: row.ID, UserID: u.ID, Role: role}
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("add member %s to %s: %w", m.Email, p.Key, err)
			}
		}

		for _, is := range p.Issues {
			reporter, err := lookup(is.Reporter)
			if err != nil {
				return err
			}
			var assigneeID *uint
			if is.Assignee != "" {
				assignee, err := lookup(is.Assignee)
				if err != nil {
					return err
				}
				assigneeID = &assignee.ID
			}
			status := issue.Status(is.Status)
			if !status.Valid() {
				return fmt.Errorf("invalid status %q on %q", is.Status, is.Title)
			}
			priority := issue.Priority(is.Priority)
			if !priority.Valid() {
				return fmt.Errorf("invalid priority %q on %q", is.Priority, is.Title)
			}
			issueRow := issue.Issue{
				ProjectID:   row.ID,
				ReporterID:  reporter.ID,
				AssigneeID:  assigneeID,
				Title:       is.Title,
				Description: is.Description,
				Status:      status,
				Priority:    priority,
			}
			if err := tx.Create(&issueRow).Error; err != nil {
				return fmt.Errorf("create issue %q: %w", is.Title, err)
			}

			for _, c := range is.Comments {
				author, err := lookup(c.Author)
				if err != nil {
					return err
				}
				commentRow := comment.Comment{IssueID: issueRow.ID, AuthorID: author.ID, Body: c.Body}
				if err := tx.Create(&commentRow).Error; err != nil {
					return fmt.Errorf("create comment on %q: %w", is.Title, err)
				}
			}
		}
	}
	return nil
}
