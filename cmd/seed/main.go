package main

import (
	"context"
	"fmt"
	"os"

	"socialnet/internal/entity"
	"socialnet/internal/model"
	"socialnet/internal/repo/persistent"
	"socialnet/internal/usecase"
	"socialnet/pkg/config"
	"socialnet/pkg/database"
	"socialnet/pkg/errs"
	"socialnet/pkg/logger"

	"github.com/jessevdk/go-flags"
	"gorm.io/gorm"
)

var opts = struct {
	Password string `long:"password" env:"SEED_PASSWORD" default:"password123" description:"password for every seeded user"`
	Posts    int    `long:"posts" env:"SEED_POSTS" default:"3" description:"posts per seeded user"`
	Migrate  bool   `long:"migrate" description:"run gorm AutoMigrate before seeding"`
}{}

var seedUsers = []struct {
	name     string
	username string
}{
	{"Alice Martin", "alice"},
	{"Bob Stone", "bob"},
	{"Charlie Reyes", "charlie"},
	{"Diana Cole", "diana"},
	{"Eve Novak", "eve"},
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "seed"
	parser.LongDescription = "Fills the socialnet database with demo users, posts and interactions"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithLevel(cfg.LogLevel)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if opts.Migrate {
		if err := db.AutoMigrate(model.All()...); err != nil {
			log.Error("Failed to migrate database: %v", err)
			panic(err)
		}
	}

	if err := seedDatabase(context.Background(), db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)

	users := usecase.NewUserUseCase(userRepo, nil, nil, log)
	posts := usecase.NewPostUseCase(postRepo, nil, log)
	interactions := usecase.NewInteractionUseCase(postRepo, persistent.NewLikeRepository(db), persistent.NewCommentRepository(db), nil, log)
	relations := usecase.NewRelationUseCase(userRepo, persistent.NewRelationRepository(db), nil, log)

	userIDs := make([]string, 0, len(seedUsers))
	for _, u := range seedUsers {
		user, err := users.Create(ctx, &entity.User{
			Name:     u.name,
			Username: u.username,
			Password: opts.Password,
			Active:   true,
		})
		if errs.Is(err, errs.ECONFLICT) {
			existing, getErr := userRepo.GetByUsername(ctx, u.username)
			if getErr != nil {
				return getErr
			}
			log.Info("User %s already exists, reusing", u.username)
			userIDs = append(userIDs, existing.ID)
			continue
		} else if err != nil {
			return fmt.Errorf("create user %s: %w", u.username, err)
		}
		log.Info("Created user %s", user.Username)
		userIDs = append(userIDs, user.ID)
	}

	var postIDs []string
	for i, userID := range userIDs {
		for n := 1; n <= opts.Posts; n++ {
			post, err := posts.Create(ctx, userID, &entity.Post{
				Description: fmt.Sprintf("Post #%d from %s", n, seedUsers[i].username),
			})
			if err != nil {
				return fmt.Errorf("create post: %w", err)
			}
			postIDs = append(postIDs, post.ID)
		}
	}
	log.Info("Created %d posts", len(postIDs))

	// Everyone follows the next two users in the ring and reacts to their
	// newest post.
	for i, userID := range userIDs {
		for step := 1; step <= 2; step++ {
			j := (i + step) % len(userIDs)
			if _, err := relations.Follow(ctx, userID, userIDs[j]); err != nil && !errs.Is(err, errs.ECONFLICT) {
				return fmt.Errorf("follow: %w", err)
			}
			if opts.Posts == 0 {
				continue
			}

			postID := postIDs[(j+1)*opts.Posts-1]
			if _, err := interactions.Like(ctx, userID, postID); err != nil && !errs.Is(err, errs.ECONFLICT) {
				return fmt.Errorf("like: %w", err)
			}
			if _, err := interactions.Comment(ctx, userID, postID, fmt.Sprintf("Nice one, %s!", seedUsers[j].name)); err != nil {
				return fmt.Errorf("comment: %w", err)
			}
		}
	}

	return nil
}
