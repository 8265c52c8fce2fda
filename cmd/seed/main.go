package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/corporoom/taskhub/internal/auth"
	"github.com/corporoom/taskhub/internal/domain"
	"github.com/corporoom/taskhub/internal/storage"
	"github.com/corporoom/taskhub/internal/storage/factory"
	"github.com/corporoom/taskhub/pkg/config/env"
)

func main() {
	if err := env.LoadDotEnv("cmd/seed/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	fixturesPath := os.Getenv("FIXTURES_PATH")
	if fixturesPath == "" {
		fixturesPath = "cmd/seed/fixtures.yaml"
	}

	file, err := os.Open(fixturesPath)
	if err != nil {
		slog.Error("failed to open fixtures file", "error", err, "path", fixturesPath)
		os.Exit(1)
	}
	defer file.Close()

	fixtures, err := LoadFixtures(file)
	if err != nil {
		slog.Error("failed to load fixtures", "error", err)
		os.Exit(1)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("failed to load storage configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores, err := factory.NewStores(ctx, storageCfg)
	if err != nil {
		slog.Error("failed to create stores", "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	if err := seed(ctx, stores, fixtures); err != nil {
		slog.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seeding completed",
		"companies", len(fixtures.Companies),
		"users", len(fixtures.Users),
		"projects", len(fixtures.Projects),
		"tasks", len(fixtures.Tasks))
}

func seed(ctx context.Context, stores *storage.Stores, fixtures *Fixtures) error {
	companies := make(map[string]uuid.UUID, len(fixtures.Companies))
	for _, cf := range fixtures.Companies {
		company, err := stores.Companies.Create(ctx, domain.Company{Name: cf.Name})
		if err != nil {
			return err
		}
		companies[cf.Name] = company.ID

		for _, sf := range cf.Subscriptions {
			_, err := stores.Companies.AddSubscription(ctx, domain.Subscription{
				CompanyID: company.ID,
				StartDate: sf.StartDate,
				EndDate:   sf.EndDate,
			})
			if err != nil {
				return err
			}
		}
	}

	users := make(map[string]uuid.UUID, len(fixtures.Users))
	for _, uf := range fixtures.Users {
		hash, err := auth.HashPassword(uf.Password)
		if err != nil {
			return err
		}

		user, err := stores.Users.Create(ctx, domain.User{
			Email:        uf.Email,
			FullName:     uf.FullName,
			PasswordHash: hash,
			IsStaff:      uf.IsStaff,
			IsActive:     true,
			CompanyID:    companies[uf.Company],
		})
		if err != nil {
			return err
		}
		users[uf.Email] = user.ID
	}

	projects := make(map[string]uuid.UUID, len(fixtures.Projects))
	for _, pf := range fixtures.Projects {
		memberIDs := make([]uuid.UUID, 0, len(pf.Users))
		for _, email := range pf.Users {
			memberIDs = append(memberIDs, users[email])
		}

		project, err := stores.Projects.Create(ctx, domain.Project{
			Name:     pf.Name,
			AuthorID: users[pf.Author],
			UserIDs:  memberIDs,
		})
		if err != nil {
			return err
		}
		projects[pf.Name] = project.ID
	}

	for _, tf := range fixtures.Tasks {
		status := domain.TaskStatus(tf.Status)
		if tf.Status == "" {
			status = domain.TaskStatusTodo
		}

		task := domain.Task{
			ProjectID:   projects[tf.Project],
			Title:       tf.Title,
			Description: tf.Description,
			Status:      status,
		}
		if tf.Assignee != "" {
			id := users[tf.Assignee]
			task.AssigneeID = &id
		}

		if _, err := stores.Tasks.Create(ctx, task); err != nil {
			return err
		}
	}

	return nil
}
