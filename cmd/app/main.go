package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	cloudinaryadapter "socialfeed/internal/adapters/cloudinary"
	dbadapter "socialfeed/internal/adapters/database"
	"socialfeed/internal/adapters/httpapi"
	"socialfeed/internal/adapters/imageproc"
	"socialfeed/internal/adapters/memory"
	redisadapter "socialfeed/internal/adapters/redis"
	"socialfeed/internal/config"
	"socialfeed/internal/core/leave"
	leaveapp "socialfeed/internal/core/leave/service"
	"socialfeed/internal/core/post"
	postapp "socialfeed/internal/core/post/service"
	"socialfeed/internal/core/task"
	taskapp "socialfeed/internal/core/task/service"
	"socialfeed/internal/core/user"
	userapp "socialfeed/internal/core/user/service"
	leavePort "socialfeed/internal/ports/leave"
	"socialfeed/internal/ports/media"
	postPort "socialfeed/internal/ports/post"
	taskPort "socialfeed/internal/ports/task"
	userPort "socialfeed/internal/ports/user"
	"socialfeed/internal/workers"

	"go.uber.org/zap"
)

// adapters آداپترهای خروجی انتخاب‌شده بر اساس STORAGE
type adapters struct {
	users    userPort.UserRepository
	posts    postPort.PostRepository
	leaves   leavePort.LeaveRepository
	tasks    taskPort.TaskRepository
	schedule leavePort.ExpirySchedule
	images   media.ImageStore
	close    func()
}

func main() {
	cfg, err := config.Load() // بارگذاری تنظیمات از .env
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := config.InitLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	defer logger.Sync() // flush buffer

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var out *adapters
	if cfg.Storage == config.StorageMemory {
		out = memoryAdapters()
	} else if out, err = databaseAdapters(ctx, cfg, logger); err != nil {
		logger.Fatal("Error initializing storage", zap.Error(err))
	}
	// بستن منابع بعد از اتمام کار سرور
	defer out.close()

	images := imageproc.NewResizer(out.images, cfg.ImageMaxWidth, cfg.ImageMaxHeight)

	userSvc := userapp.NewUserService(out.users, []byte(cfg.JWTSecret), logger)               // یوزکیس/سرویس
	postSvc := postapp.NewPostService(out.posts, out.users, images, logger)                   // یوزکیس/سرویس
	leaveSvc := leaveapp.NewLeaveService(out.leaves, out.schedule, images, logger)            // یوزکیس/سرویس
	taskSvc := taskapp.NewTaskService(out.tasks, logger)                                      // یوزکیس/سرویس
	r := httpapi.SetupRoutes(userSvc, postSvc, leaveSvc, taskSvc, cfg.AllowedOrigins, logger) // تزریق یوزکیس به آداپتر ورودی

	// اجرای worker در پس‌زمینه
	go workers.NewExpiryWorker(leaveSvc, cfg.ExpirySweepInterval, logger).Run(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", zap.Error(err))
		}
	}()

	logger.Info("App is running...", zap.String("port", cfg.Port), zap.String("storage", cfg.Storage))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed to start", zap.Error(err))
	}
}

func memoryAdapters() *adapters {
	return &adapters{
		users:    memory.NewUserRepository(),
		posts:    memory.NewPostRepository(),
		leaves:   memory.NewLeaveRepository(),
		tasks:    memory.NewTaskRepository(),
		schedule: memory.NewExpirySchedule(),
		images:   memory.NewImageStore(),
		close:    func() {},
	}
}

func databaseAdapters(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*adapters, error) {
	// اتصال به دیتابیس و اجرای مایگریشن‌ها
	db, err := config.OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&user.User{},
		&post.Post{},
		&leave.Leave{},
		&task.Task{},
	); err != nil {
		config.CloseDB(db)
		return nil, err
	}
	logger.Info("Database migrations completed")

	// اتصال به Redis
	rdb, err := config.NewRedis(ctx, cfg)
	if err != nil {
		config.CloseDB(db)
		return nil, err
	}

	images, err := cloudinaryadapter.NewImageStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		rdb.Close()
		config.CloseDB(db)
		return nil, err
	}

	return &adapters{
		users:    dbadapter.NewUserRepositoryDatabase(db),
		posts:    dbadapter.NewPostRepositoryDatabase(db),
		leaves:   dbadapter.NewLeaveRepositoryDatabase(db),
		tasks:    dbadapter.NewTaskRepositoryDatabase(db),
		schedule: redisadapter.NewExpiryRepositoryRedis(rdb),
		images:   images,
		close: func() {
			// بستن اتصال به Redis
			if err := rdb.Close(); err != nil {
				logger.Error("Error closing Redis connection", zap.Error(err))
			}
			// بستن اتصال دیتابیس
			if err := config.CloseDB(db); err != nil {
				logger.Error("Error closing database connection", zap.Error(err))
			}
		},
	}, nil
}
