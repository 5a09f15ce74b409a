package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	config "github.com/sisters-restaurant/go-backend/internal/cfg"
	v1Http "github.com/sisters-restaurant/go-backend/internal/delivery/v1/http"
	minioInfra "github.com/sisters-restaurant/go-backend/internal/infrastructure/minio"
	s3Repo "github.com/sisters-restaurant/go-backend/internal/repository/minio"
	"github.com/sisters-restaurant/go-backend/internal/repository/mongodb"
	mongoConv "github.com/sisters-restaurant/go-backend/internal/repository/mongodb/converter"
	"github.com/sisters-restaurant/go-backend/internal/repository/redis"
	redisConv "github.com/sisters-restaurant/go-backend/internal/repository/redis/converter"
	"github.com/sisters-restaurant/go-backend/internal/usecase"
	"github.com/sisters-restaurant/go-backend/pkg/clients"
	"github.com/sisters-restaurant/go-backend/pkg/closer"
	"github.com/sisters-restaurant/go-backend/pkg/e"
	"github.com/sisters-restaurant/go-backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// App держит собранное приложение: HTTP-сервер и ресурсы,
// которые нужно закрыть при завершении.
type App struct {
	cfg    *config.Config
	logger logger.Logger

	httpSrv *v1Http.Server
	closer  *closer.Closer

	shutdownCancel context.CancelFunc
}

// NewApp собирает все зависимости приложения. Недоступность MongoDB вне
// production и незаполненные учётные данные MinIO не считаются фатальными:
// приложение стартует в ограниченном режиме.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser()

	// Контекст фоновых задач; отменяется после остановки приложения.
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	a := &App{
		cfg:            cfg,
		logger:         log,
		closer:         cl,
		shutdownCancel: shutdownCancel,
	}

	mongoClient, err := initMongo(shutdownCtx, cfg, log)
	if err != nil {
		shutdownCancel()
		return nil, e.Wrap("failed to initialize mongodb", err)
	}
	cl.Add("mongodb", mongoClient.Close)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		// кэш необязателен: при недоступном Redis каждый запрос идёт в базу
		log.Warnf("redis is unavailable, menu caching degraded: %v", err)
	}
	redisCancel()
	cl.Add("redis", func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	imageRepo := initImageRepo(cfg, log)
	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, shutdownCtx)
	cl.Add("image cleanup", imagesInfra.WaitForCleanup)

	menuRepo := mongodb.NewMenuRepo(mongoClient.Database, mongoConv.NewMenuItemConverterImpl())
	cacheRepo := redis.NewCacheRepo(redisClient, redisConv.NewMenuItemConverterImpl(), cfg.Redis, log)

	menuUC := usecase.NewMenuUC(menuRepo, cacheRepo, imagesInfra, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(menuUC)

	a.httpSrv = v1Http.NewServer(r, cfg.Http)
	cl.Add("http server", a.httpSrv.Stop)

	return a, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения
// или фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	defer a.shutdownCancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("%v", err)
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

// initMongo подключается к MongoDB и проверяет соединение. В production
// недоступная база фатальна; вне production приложение стартует и
// продолжает попытки подключения в фоне.
func initMongo(retryCtx context.Context, cfg *config.Config, log logger.Logger) (*clients.MongoClient, error) {
	if !cfg.Mongo.URIFromEnv {
		log.Warnf("MONGODB_URI is not set, using local default %s", cfg.Mongo.URI)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	defer cancel()

	client, err := clients.NewMongoClient(connectCtx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connectCtx); err != nil {
		if cfg.App.Production {
			return nil, err
		}

		log.Warnf("mongodb is unreachable, starting anyway: %v", err)
		go retryMongoPing(retryCtx, client, cfg.Mongo.RetryDelay, log)
	}

	return client, nil
}

// retryMongoPing периодически проверяет соединение с MongoDB,
// пока оно не восстановится или приложение не остановится.
func retryMongoPing(ctx context.Context, client *clients.MongoClient, delay time.Duration, log logger.Logger) {
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := client.Ping(pingCtx)
			cancel()
			if err == nil {
				log.Infof("mongodb connection established")
				return
			}
			log.Warnf("mongodb still unreachable, retrying in %s: %v", delay, err)
		}
	}
}

// initImageRepo создаёт репозиторий изображений. Возвращает nil, когда
// хранилище не настроено или недоступно: загрузка изображений отключается,
// остальное API продолжает работать.
func initImageRepo(cfg *config.Config, log logger.Logger) usecase.ImageRepository {
	if !cfg.Minio.Enabled() {
		log.Warnf("minio credentials are not set, image uploads disabled")
		return nil
	}

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Warnf("failed to initialize minio client, image uploads disabled: %v", err)
		return nil
	}

	bucketCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := clients.EnsureBucket(bucketCtx, minioClient, cfg.Minio.BucketName); err != nil {
		log.Warnf("failed to initialize minio bucket, image uploads disabled: %v", err)
		return nil
	}

	return s3Repo.NewImageRepo(minioClient, cfg.Minio)
}
