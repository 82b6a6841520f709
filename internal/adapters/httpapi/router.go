package httpapi

import (
	"context"
	"time"

	"socialfeed/internal/adapters/httpapi/middleware"
	leavePort "socialfeed/internal/ports/leave"
	"socialfeed/internal/ports/media"
	postPort "socialfeed/internal/ports/post"
	taskPort "socialfeed/internal/ports/task"
	userPort "socialfeed/internal/ports/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, username, name, avatar, password string) (*userPort.UserDTO, error)
	GetProfile(ctx context.Context, userID string) (*userPort.UserDTO, error)
	VerifyToken(token string) (string, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, userID, content string, img *media.Image) (*postPort.PostView, error)
	ListPosts(ctx context.Context) ([]*postPort.PostView, error)
	ToggleLike(ctx context.Context, postID, userID string) (*postPort.LikedPostView, error)
	AddComment(ctx context.Context, postID, userID, text string) (*postPort.CommentView, error)
	AddReply(ctx context.Context, postID, commentID, userID, text string) (*postPort.ReplyView, error)
	DeletePost(ctx context.Context, postID, requesterID string) error
	WithUserLoader(ctx context.Context) context.Context
}

type LeaveUseCase interface {
	CreateLeave(ctx context.Context, in leavePort.CreateLeaveInput, img *media.Image) (*leavePort.LeaveDTO, error)
	ListLeaves(ctx context.Context) ([]*leavePort.LeaveDTO, error)
	GetLeave(ctx context.Context, id string) (*leavePort.LeaveDTO, error)
	UpdateLeave(ctx context.Context, id string, in leavePort.UpdateLeaveInput) (*leavePort.LeaveDTO, error)
	DeleteLeave(ctx context.Context, id string) (*leavePort.LeaveDTO, error)
}

type TaskUseCase interface {
	CreateTask(ctx context.Context, in taskPort.CreateTaskInput) (*taskPort.TaskDTO, error)
	ListTasks(ctx context.Context) ([]*taskPort.TaskDTO, error)
	UpdateTask(ctx context.Context, id string, in taskPort.UpdateTaskInput) (*taskPort.TaskDTO, error)
	DeleteTask(ctx context.Context, id string) (*taskPort.TaskDTO, error)
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	leaveUC LeaveUseCase,
	taskUC TaskUseCase,
	allowedOrigins []string,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	uc := NewUserController(userUC, logger)
	pc := NewPostController(postUC, logger)
	lc := NewLeaveController(leaveUC, logger)
	tc := NewTaskController(taskUC, logger)
	auth := middleware.JWTAuthMiddleware(userUC)

	api := r.Group("/api")

	// مسیرهای ثبت‌نام و ورود بدون JWT Middleware
	users := api.Group("/users")
	users.POST("/register", uc.RegisterUser)
	users.POST("/login", uc.LoginUser)
	users.GET("/profile", auth, uc.GetProfile)

	posts := api.Group("/posts", auth, withUserLoader(postUC))
	posts.POST("", pc.CreatePost)
	posts.GET("", pc.ListPosts)
	posts.PUT("/:id/like", pc.ToggleLike)
	posts.POST("/:id/comments", pc.AddComment)
	posts.POST("/:id/comments/:commentId/replies", pc.AddReply)
	posts.DELETE("/:id", pc.DeletePost)

	leaves := api.Group("/leave")
	leaves.GET("", lc.ListLeaves)
	leaves.GET("/:id", lc.GetLeave)
	leaves.POST("", lc.CreateLeave)
	leaves.PATCH("/:id", lc.UpdateLeave)
	leaves.DELETE("/:id", lc.DeleteLeave)

	tasks := api.Group("/tasks")
	tasks.GET("", tc.ListTasks)
	tasks.POST("", tc.CreateTask)
	tasks.PATCH("/:id", tc.UpdateTask)
	tasks.DELETE("/:id", tc.DeleteTask)

	return r
}

// withUserLoader یک loader کاربر برای هر درخواست پست
func withUserLoader(pc PostUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(pc.WithUserLoader(c.Request.Context()))
		c.Next()
	}
}
