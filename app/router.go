// Package app wires the HTTP handlers to their dependencies
package app

import (
	"fmt"
	"time"

	"linguaai/flashcards-api/app/chat"
	"linguaai/flashcards-api/app/flashcard"
	"linguaai/flashcards-api/app/language"
	"linguaai/flashcards-api/app/root"
	"linguaai/flashcards-api/app/user"
	"linguaai/flashcards-api/config"
	"linguaai/flashcards-api/db"
	"linguaai/flashcards-api/internal"
	"linguaai/flashcards-api/internal/repository"
	"linguaai/flashcards-api/internal/service"
	"linguaai/flashcards-api/pkg/middleware"
	"linguaai/flashcards-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

var store = persist.NewMemoryStore(time.Minute)

// NewDeps opens the database described by cfg and builds every service the
// handlers need
func NewDeps(cfg *config.Config) (*internal.Deps, error) {
	conn, err := db.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	gen := service.NewGeminiClient(cfg.Gen.APIKey, cfg.Gen.Model, cfg.Gen.Endpoint)
	return WithDB(cfg, conn, gen), nil
}

// WithDB builds the dependency bundle on top of an already opened database
func WithDB(cfg *config.Config, conn *gorm.DB, gen service.TextGenerator) *internal.Deps {
	repo := repository.New(conn)

	return &internal.Deps{
		Config: cfg,
		DB:     conn,
		Repo:   repo,
		Hasher: security.NewHasher(cfg.Security.BcryptCost),
		Tokens: security.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL),
		Chat:   service.NewChat(repo.Flashcards, gen),
	}
}

func NewRouter(d *internal.Deps) *gin.Engine {
	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     d.Config.Host.CORS,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware(d.Tokens, d.Repo.Users)
	ping := func() error {
		sqlDB, err := d.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}

	m := router.Group("/api", middleware.BodySizeLimiter(d.Config.Host.MaxBody))
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat(ping))
		m.GET("/heartbeat", root.Heartbeat(ping))

		// GET /api/validate		-> Validates a JWT token
		m.GET("/validate", jwt, root.Validate)
	}

	u := m.Group("/users")
	{
		// GET /api/users		-> Lists every registered user
		u.GET("", jwt, func(c *gin.Context) { user.UserList(c, d) })

		// POST /api/users 		-> Registers a new user
		u.POST("", func(c *gin.Context) { user.UserRegister(c, d) })

		// POST /api/users/login 	-> Logs in a user and returns a JWT token
		u.POST("/login", func(c *gin.Context) { user.UserLogin(c, d) })

		// POST /api/users/logout	-> Clears the auth cookies
		u.POST("/logout", func(c *gin.Context) { user.UserLogout(c, d) })

		// GET /api/users/me		-> Returns the authenticated user
		u.GET("/me", jwt, user.UserMe)

		// GET /api/users/me/flashcards	-> Returns the authenticated user with their cards
		u.GET("/me/flashcards", jwt, func(c *gin.Context) { user.UserMeFlashcards(c, d) })
	}

	// GET /api/flashcards/statuses	-> Lists the allowed card statuses
	m.GET("/flashcards/statuses", cacheFor(60*60), flashcard.FlashcardStatuses)

	f := m.Group("/flashcards", jwt)
	{
		// GET /api/flashcards		-> Lists the user's cards one page at a time
		f.GET("", func(c *gin.Context) { flashcard.FlashcardList(c, d) })

		// POST /api/flashcards		-> Creates a card
		f.POST("", func(c *gin.Context) { flashcard.FlashcardCreate(c, d) })

		// GET /api/flashcards/:id	-> Returns a card owned by the user
		f.GET("/:id", func(c *gin.Context) { flashcard.FlashcardFetch(c, d) })

		// PUT /api/flashcards/:id	-> Replaces a card's question, answer and status
		f.PUT("/:id", func(c *gin.Context) { flashcard.FlashcardEdit(c, d) })

		// DELETE /api/flashcards/:id	-> Deletes a card owned by the user
		f.DELETE("/:id", func(c *gin.Context) { flashcard.FlashcardDelete(c, d) })
	}

	l := m.Group("/languages")
	{
		// GET /api/languages		-> Lists registered languages
		l.GET("", func(c *gin.Context) { language.LanguageList(c, d) })

		// POST /api/languages		-> Registers a language code
		l.POST("", jwt, func(c *gin.Context) { language.LanguageCreate(c, d) })
	}

	// POST /api/chat			-> Answers a chat message
	m.POST("/chat", jwt, func(c *gin.Context) { chat.ChatSend(c, d) })

	return router
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
