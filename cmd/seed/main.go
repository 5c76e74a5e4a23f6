package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"

	"community-feed/pkg/config"
	"community-feed/pkg/database"
	"community-feed/pkg/logger"
	"community-feed/pkg/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	seedUsers          = 5
	seedPosts          = 10
	commentsPerPost    = 3
	repliesPerComment  = 2
	seedPassword       = "password123"
	featuredPostAuthor = 0
	featuredCommenter  = 1
)

func main() {
	var randSeed int64
	flag.Int64Var(&randSeed, "rand-seed", 42, "Seed for picking random authors")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, rand.New(rand.NewSource(randSeed)), log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, rng *rand.Rand, log *logger.Logger) error {
	users, err := seedUserAccounts(db, log)
	if err != nil {
		return err
	}
	pick := func() models.User { return users[rng.Intn(len(users))] }

	posts := make([]models.Post, 0, seedPosts)
	for i := 1; i <= seedPosts; i++ {
		post := models.Post{
			AuthorID: pick().ID,
			Text:     fmt.Sprintf("This is post number %d. It's a great day for community building!", i),
		}
		if err := db.Create(&post).Error; err != nil {
			return fmt.Errorf("failed to create post %d: %w", i, err)
		}
		posts = append(posts, post)
	}
	log.Info("Created %d posts", len(posts))

	comments := 0
	for _, post := range posts {
		for i := 1; i <= commentsPerPost; i++ {
			comment := models.Comment{
				PostID:   post.ID,
				AuthorID: pick().ID,
				Text:     fmt.Sprintf("Comment %d on post %s", i, post.ID),
			}
			if err := db.Create(&comment).Error; err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			comments++

			for j := 1; j <= repliesPerComment; j++ {
				parentID := comment.ID
				reply := models.Comment{
					PostID:   post.ID,
					ParentID: &parentID,
					AuthorID: pick().ID,
					Text:     fmt.Sprintf("Reply %d to comment %s", j, comment.ID),
				}
				if err := db.Create(&reply).Error; err != nil {
					return fmt.Errorf("failed to create reply: %w", err)
				}
				comments++
			}
		}
	}
	log.Info("Created %d comments", comments)

	// The first user owns half the posts and everybody else likes them.
	star := users[featuredPostAuthor]
	for i := range posts[:seedPosts/2] {
		if err := db.Model(&posts[i]).Update("author_id", star.ID).Error; err != nil {
			return fmt.Errorf("failed to reassign post: %w", err)
		}
		for _, fan := range users {
			if fan.ID == star.ID {
				continue
			}
			postID := posts[i].ID
			if err := createLike(db, &models.Like{UserID: fan.ID, PostID: &postID}); err != nil {
				return err
			}
		}
	}

	// The second user collects karma from comment likes.
	commenter := users[featuredCommenter]
	var theirComments []models.Comment
	if err := db.Where("author_id = ?", commenter.ID).Find(&theirComments).Error; err != nil {
		return fmt.Errorf("failed to load comments: %w", err)
	}
	for _, c := range theirComments {
		for _, fan := range users {
			if fan.ID == commenter.ID {
				continue
			}
			commentID := c.ID
			if err := createLike(db, &models.Like{UserID: fan.ID, CommentID: &commentID}); err != nil {
				return err
			}
		}
	}
	log.Info("Created likes for %s and %s", star.Username, commenter.Username)

	return nil
}

func seedUserAccounts(db *gorm.DB, log *logger.Logger) ([]models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	users := make([]models.User, 0, seedUsers)
	for i := 1; i <= seedUsers; i++ {
		username := fmt.Sprintf("user%d", i)

		var user models.User
		err := db.Where("username = ?", username).First(&user).Error
		switch {
		case err == nil:
			log.Info("User %s already exists, resetting password", username)
			if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
				return nil, fmt.Errorf("failed to update user %s: %w", username, err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				Username: username,
				Email:    username + "@example.com",
				Password: string(hashedPassword),
				Role:     models.RoleMember,
			}
			if err := db.Create(&user).Error; err != nil {
				return nil, fmt.Errorf("failed to create user %s: %w", username, err)
			}
			log.Info("Created user: %s", username)
		default:
			return nil, fmt.Errorf("failed to look up user %s: %w", username, err)
		}

		users = append(users, user)
	}
	return users, nil
}

// createLike ignores likes that already exist so the seed can be re-run.
func createLike(db *gorm.DB, like *models.Like) error {
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
		return fmt.Errorf("failed to create like: %w", err)
	}
	return nil
}
