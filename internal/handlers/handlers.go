package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ilyahahaha/vneshtata-new/internal/cache"
	"github.com/ilyahahaha/vneshtata-new/internal/config"
	"github.com/ilyahahaha/vneshtata-new/internal/middleware"
	"github.com/ilyahahaha/vneshtata-new/internal/repository"
	"github.com/ilyahahaha/vneshtata-new/internal/security"
	"github.com/ilyahahaha/vneshtata-new/internal/service"
	"github.com/ilyahahaha/vneshtata-new/internal/storage"
)

type HandlerSet struct {
	log      zerolog.Logger
	cfg      *config.AppConfig
	sessions *security.SessionStore
	auth     *service.AuthService
	users    *service.UserService
	posts    *service.PostService
	chat     *service.ChatService
	avatars  *service.AvatarService
	db       *pgxpool.Pool
	cache    *redis.Client
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, redisClient *redis.Client, store *storage.ObjectStore, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	employmentRepo := repository.NewEmploymentRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	idsCache := cache.NewBusiedIDs(redisClient, cfg.Cache.BusiedIDsTTL)
	sessions := security.NewSessionStore(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.CookieName, cfg.IsProduction())

	auth := service.NewAuthService(userRepo, idsCache, log)
	users := service.NewUserService(userRepo, profileRepo, employmentRepo, followRepo, idsCache, log)
	posts := service.NewPostService(postRepo, log)
	chat := service.NewChatService(messageRepo, log)

	var avatars *service.AvatarService
	if store != nil {
		avatars = service.NewAvatarService(userRepo, store, log)
	}

	return HandlerSet{
		log:      log,
		cfg:      cfg,
		sessions: sessions,
		auth:     auth,
		users:    users,
		posts:    posts,
		chat:     chat,
		avatars:  avatars,
		db:       db,
		cache:    redisClient,
	}
}

func (h HandlerSet) Avatars() *service.AvatarService {
	return h.avatars
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	v1.Use(middleware.Session(h.sessions))

	user := v1.Group("/user")
	{
		user.GET("/session", h.Session)
		user.POST("/register", h.RegisterUser)
		user.POST("/login", h.Login)
		user.POST("/logout", h.Logout)

		protected := user.Group("")
		protected.Use(middleware.RequireAuth())
		protected.GET("/ids", h.GetBusiedIDs)
		protected.GET("/:userId", h.GetUser)
		protected.POST("/follow", h.Follow)
		protected.PUT("", h.UpdateUser)
		protected.PUT("/profile", h.UpdateProfile)
		protected.POST("/employment", h.CreateEmployment)
		protected.DELETE("/employment/:employmentId", h.DeleteEmployment)
		protected.POST("/avatar", h.UploadAvatar)
	}

	post := v1.Group("/post")
	post.Use(middleware.RequireAuth())
	{
		post.GET("", h.GetPosts)
		post.POST("", h.AddPost)
		post.GET("/:postId/comments", h.GetPostComments)
		post.POST("/like", h.LikePost)
		post.POST("/comment", h.CommentPost)
	}

	chat := v1.Group("/chat")
	chat.Use(middleware.RequireAuth())
	{
		chat.GET("", h.GetDialogs)
		chat.GET("/:userId", h.GetMessages)
		chat.POST("", h.SendMessage)
	}
}
