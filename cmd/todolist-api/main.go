package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "todolist-api/configs"
	"todolist-api/docs"
	"todolist-api/internal/application/controller"
	"todolist-api/internal/application/middleware"
	"todolist-api/internal/application/schedule"
	"todolist-api/internal/domain/gateway/cache"
	"todolist-api/internal/domain/gateway/db"
	"todolist-api/internal/domain/gateway/queue"
	"todolist-api/internal/domain/usecase/checklist"
	"todolist-api/internal/domain/usecase/checklisttask"
	"todolist-api/internal/domain/usecase/health"
	"todolist-api/internal/domain/usecase/reminder"
	"todolist-api/internal/domain/usecase/task"
	"todolist-api/internal/domain/usecase/user"
	"todolist-api/internal/infra/aws"
	"todolist-api/internal/infra/database/gorm"
	httpclient "todolist-api/pkg/http"
	"todolist-api/pkg/log"
	"todolist-api/pkg/msg"
	"todolist-api/pkg/oidc"
	"todolist-api/pkg/redis"
	"todolist-api/pkg/resource"
	"todolist-api/pkg/sqs"
)

func main() {
	appName := resource.GetString("app.name")
	log.Info(msg.GetMessage("app.start", appName))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init infra
	database, err := gorm.Open(gorm.ConfigFromProperties())
	if err != nil {
		log.Fatal("Fail to connect database", zap.Error(err))
	}

	var redisClient *redis.Client
	if resource.GetBool("app.redis.enabled") {
		redisClient, err = newRedisClient()
		if err != nil {
			log.Fatal("Fail to create Redis client", zap.Error(err))
		}
		defer redisClient.Close()
	}

	reminderQueue := resource.GetString("app.reminder.queue-name")
	queueSender, queueHealth := newQueue(ctx, reminderQueue)

	// Init Gateways
	taskGateway := db.NewGormTaskGateway(database)
	checklistGateway := db.NewGormChecklistGateway(database)
	userGateway := db.NewGormUserGateway(database)
	dbHealthGateway := db.NewGormHealthDBGateway(database)

	var userCacheGateway cache.UserCacheGateway = cache.NoopUserCacheGateway{}
	var cacheHealthGateway cache.HealthGateway = cache.NoopUserCacheGateway{}
	if redisClient != nil {
		redisCache := cache.NewRedisUserCacheGateway(redisClient)
		userCacheGateway, cacheHealthGateway = redisCache, redisCache
	}

	// Init UseCase
	taskUseCase := task.NewTaskUseCase(taskGateway, time.Now)
	checklistUseCase := checklist.NewChecklistUseCase(checklistGateway)
	checklistTaskUseCase := checklisttask.NewChecklistTaskUseCase(taskUseCase, checklistUseCase)
	userUseCase := user.NewUserUseCase(userGateway, userCacheGateway)
	healthUseCase := health.NewHealthUseCase(dbHealthGateway, cacheHealthGateway, queueHealth)
	reminderUseCase := reminder.NewReminderUseCase(taskGateway, userGateway, queueSender, reminder.Config{
		QueueName: reminderQueue,
		DaysAhead: resource.GetInt("app.reminder.days-ahead"),
	}, time.Now)

	// Init Server
	contextPath := resource.GetString("app.server.context-path")
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(middleware.CORS(resource.GetString("app.server.allowed-origin-patterns")))
	middleware.SetupRequestLogger(e)

	verifier := oidc.NewVerifier(oidc.Config{
		IssuerURL:       resource.GetString("app.oidc.issuer-url"),
		ClientID:        resource.GetString("app.oidc.client-id"),
		Leeway:          resource.GetDuration("app.oidc.leeway"),
		RefreshInterval: resource.GetDuration("app.oidc.jwks-refresh-interval"),
		ReloadInterval:  resource.GetDuration("app.oidc.jwks-reload-interval"),
	}, httpclient.NewHttpClient("", httpclient.ClientOptions{
		Backoff: httpclient.NewBackoffConfig(),
		Logger:  log.HTTPLogger{Client: "oidc"},
	}))
	defer verifier.Close()

	access := middleware.AccessControl{
		Verifier:    verifier,
		Users:       userUseCase,
		ContextPath: contextPath,
	}
	if redisClient != nil {
		access.IPLimiter = newRateLimiter(redisClient, resource.GetInt("app.rate-limit.ip-requests-per-minute"))
		access.UserLimiter = newRateLimiter(redisClient, resource.GetInt("app.rate-limit.requests-per-minute"))
	}
	middleware.SetupAccessControl(e, access)

	api := e.Group(contextPath)
	if contextPath != "" {
		docs.SwaggerInfo.BasePath = contextPath
	}
	api.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Controller
	controller.NewIndexController(api).InitIndexRoutes()
	controller.NewHealthController(api, healthUseCase).InitHealthRoutes()
	controller.NewTaskController(api, taskUseCase).InitTaskRoutes()
	controller.NewChecklistTaskController(api, checklistTaskUseCase).InitChecklistTaskRoutes()
	controller.NewChecklistController(api, checklistUseCase).InitChecklistRoutes()
	controller.NewUserController(api, userUseCase).InitUserRoutes()

	// Init Schedule
	var reminderScheduler *schedule.ReminderScheduler
	if resource.GetBool("app.reminder.enabled") {
		reminderScheduler = schedule.NewReminderScheduler(reminderUseCase, redisClient, schedule.ReminderSchedulerConfig{
			CronExpression: resource.GetString("app.reminder.cron"),
			LockTTL:        resource.GetDuration("app.reminder.lock-ttl"),
		})
		if err := reminderScheduler.InitReminderScheduleTasks(); err != nil {
			log.Fatal("Fail to start reminder scheduler", zap.Error(err))
		}
	}

	// Start Routes
	port := resource.GetString("app.server.port")
	go func() {
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()
	log.Info(msg.GetMessage("app.started", appName, port))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if reminderScheduler != nil {
		reminderScheduler.Stop()
	}
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("Fail to shutdown server", zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped", appName))
	_ = log.Sync()
}

func newRedisClient() (*redis.Client, error) {
	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database")).
		WithCacheTTL(cache.UserCacheName, resource.GetDuration("app.redis.user-cache-ttl"))
	return redis.NewClient(config)
}

// newQueue returns the SQS backed sender when enabled, otherwise reminders are only logged
func newQueue(ctx context.Context, queueNames ...string) (queue.Sender, queue.HealthGateway) {
	if !resource.GetBool("app.cloud.sqs-enabled") {
		return queue.LogSender{}, queue.LogSender{}
	}

	awsProperties := aws.ConfigFromProperties()
	awsConfig, err := aws.LoadConfig(ctx, awsProperties)
	if err != nil {
		log.Fatal("Fail to load AWS configuration", zap.Error(err))
	}

	sender := sqs.NewSender(aws.NewSqsClient(awsConfig, awsProperties.Endpoint))
	return aws.NewSQSSenderAdapter(sender), queue.NewSQSHealthGateway(sender, queueNames...)
}

// newRateLimiter returns nil when rpm disables limiting.
func newRateLimiter(redisClient *redis.Client, rpm int) middleware.Limiter {
	if rpm <= 0 {
		return nil
	}
	limiter, err := redis.NewRateLimiter(redisClient, "rate_limit", rpm, time.Minute)
	if err != nil {
		log.Fatal("Fail to create rate limiter", zap.Error(err))
	}
	return limiter
}
