package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"tourbook/internal/config"
	"tourbook/internal/database"
	"tourbook/internal/logger"
	"tourbook/internal/repository"
	"tourbook/internal/service"
	"tourbook/pkg/auth"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const seedTimeout = 2 * time.Minute

type repositories struct {
	tours   repository.TourRepository
	users   repository.UserRepository
	reviews repository.ReviewRepository
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Insert tours, users and reviews from the data directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		data, err := loadDataSet(dir, auth.HashPassword)
		if err != nil {
			return err
		}

		return withRepositories(func(ctx context.Context, repos repositories, log *zap.Logger) error {
			if err := repos.tours.InsertMany(ctx, data.Tours); err != nil {
				return fmt.Errorf("insert tours: %w", err)
			}
			if err := repos.users.InsertMany(ctx, data.Users); err != nil {
				return fmt.Errorf("insert users: %w", err)
			}
			if err := repos.reviews.InsertMany(ctx, data.Reviews); err != nil {
				return fmt.Errorf("insert reviews: %w", err)
			}

			// Reviews inserted in bulk skip the service, so ratings are
			// summarized here once per tour.
			ratings := service.NewReviewService(repos.reviews, repos.tours, repos.users, 0)
			for _, tourID := range data.reviewedTours() {
				if err := ratings.CalcAverageRatings(ctx, tourID); err != nil {
					return fmt.Errorf("summarize ratings of %s: %w", tourID.Hex(), err)
				}
			}

			log.Info("Data successfully created",
				zap.Int("tours", len(data.Tours)),
				zap.Int("users", len(data.Users)),
				zap.Int("reviews", len(data.Reviews)))
			return nil
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Remove every tour, user and review",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepositories(func(ctx context.Context, repos repositories, log *zap.Logger) error {
			tours, err := repos.tours.DeleteAll(ctx)
			if err != nil {
				return fmt.Errorf("delete tours: %w", err)
			}
			users, err := repos.users.DeleteAll(ctx)
			if err != nil {
				return fmt.Errorf("delete users: %w", err)
			}
			reviews, err := repos.reviews.DeleteAll(ctx)
			if err != nil {
				return fmt.Errorf("delete reviews: %w", err)
			}

			log.Info("Data successfully deleted",
				zap.Int64("tours", tours),
				zap.Int64("users", users),
				zap.Int64("reviews", reviews))
			return nil
		})
	},
}

func init() {
	importCmd.Flags().String("dir", "dev-data", "directory holding tours.json, users.json and reviews.json")
	rootCmd.AddCommand(importCmd, deleteCmd)
}

// withRepositories connects to the configured database and runs fn.
func withRepositories(fn func(ctx context.Context, repos repositories, log *zap.Logger) error) error {
	cfg := config.Load()

	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync(appLog)

	mongoDB := database.NewMongoDB(cfg.MongoConnectionString(), cfg.MongoDatabase, appLog)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	return fn(ctx, repositories{
		tours:   repository.NewTourRepository(mongoDB.Database),
		users:   repository.NewUserRepository(mongoDB.Database),
		reviews: repository.NewReviewRepository(mongoDB.Database),
	}, appLog)
}
