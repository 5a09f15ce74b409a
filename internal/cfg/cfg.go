package cfg

import (
	"os"
	"strconv"
	"time"

	"github.com/sisters-restaurant/go-backend/pkg/e"
	"github.com/sisters-restaurant/go-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	App   *AppCfg
	Http  *HTTPConfig
	Mongo *MongoCfg
	Minio *MinIOCfg
	Redis *RedisCfg
}

type AppCfg struct {
	Env        string
	Production bool
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type MongoCfg struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	RetryDelay     time.Duration // пауза перед повторной попыткой подключения вне production
	URIFromEnv     bool          // false: MONGODB_URI не задан, используется локальное значение по умолчанию
}

type MinIOCfg struct {
	MinioEndpoint     string // Адрес конечной точки Minio
	PublicBaseURL     string // Базовый URL для публичных ссылок на объекты; пустой — строится из endpoint
	BucketName        string // Название конкретного бакета в Minio
	MinioRootUser     string // Имя пользователя для доступа к Minio
	MinioRootPassword string // Пароль для доступа к Minio
	MinioUseSSL       bool
	UploadFolder      string // Папка (префикс ключей) для загружаемых изображений
	MaxFileSize       int64  // Лимит размера одного изображения в байтах
}

// Enabled сообщает, заданы ли учётные данные хранилища изображений.
// Без них загрузка изображений отключается, остальное приложение работает.
func (m *MinIOCfg) Enabled() bool {
	return m.MinioEndpoint != "" && m.MinioRootUser != "" && m.MinioRootPassword != ""
}

type RedisCfg struct {
	Addr        string
	Password    string
	User        string
	DB          int
	MaxRetries  int
	DialTimeout time.Duration
	Timeout     time.Duration
	MenuTTL     time.Duration
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	mongo, err := loadMongoCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		App:   loadAppCfg(),
		Http:  http,
		Mongo: mongo,
		Minio: loadMinIOCfg(log),
		Redis: redis,
	}, nil
}

func loadAppCfg() *AppCfg {
	env := getEnvOrDefault("APP_ENV", "development")

	return &AppCfg{
		Env:        env,
		Production: env == "production",
	}
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "3003"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 10 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	port := getEnvOrDefault("PORT", defaultPort)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadMongoCfg(log logger.Logger) (*MongoCfg, error) {
	const (
		defaultURI            = "mongodb://localhost:27017/sisters-restaurant"
		defaultDatabase       = "sisters-restaurant"
		defaultConnectTimeout = 10 * time.Second
		defaultRetryDelay     = 5 * time.Second
	)

	uri := getEnv("MONGODB_URI")
	fromEnv := uri != ""
	if !fromEnv {
		uri = defaultURI
	}

	connectTimeout, err := parseDurationEnv("MONGODB_CONNECT_TIMEOUT", defaultConnectTimeout)
	if err != nil {
		log.Errorf(err, "invalid MONGODB_CONNECT_TIMEOUT")
		return nil, err
	}

	retryDelay, err := parseDurationEnv("MONGODB_RETRY_DELAY", defaultRetryDelay)
	if err != nil {
		log.Errorf(err, "invalid MONGODB_RETRY_DELAY")
		return nil, err
	}

	return &MongoCfg{
		URI:            uri,
		Database:       getEnvOrDefault("MONGODB_DATABASE", defaultDatabase),
		ConnectTimeout: connectTimeout,
		RetryDelay:     retryDelay,
		URIFromEnv:     fromEnv,
	}, nil
}

// loadMinIOCfg никогда не завершается ошибкой: отсутствующие учётные данные
// лишь отключают загрузку изображений.
func loadMinIOCfg(log logger.Logger) *MinIOCfg {
	const (
		defaultUseSSL       = false
		defaultBucket       = "menu-images"
		defaultUploadFolder = "sisters-restaurant"
		defaultMaxFileSize  = 5 << 20 // 5 MiB
	)

	useSSL, err := strconv.ParseBool(getEnvOrDefault("MINIO_USE_SSL", strconv.FormatBool(defaultUseSSL)))
	if err != nil {
		log.Warnf("invalid MINIO_USE_SSL, falling back to %t: %v", defaultUseSSL, err)
		useSSL = defaultUseSSL
	}

	cfg := &MinIOCfg{
		MinioEndpoint:     getEnv("MINIO_ENDPOINT"),
		PublicBaseURL:     getEnv("MINIO_PUBLIC_URL"),
		BucketName:        getEnvOrDefault("MINIO_BUCKET", defaultBucket),
		MinioRootUser:     getEnv("MINIO_ROOT_USER"),
		MinioRootPassword: getEnv("MINIO_ROOT_PASSWORD"),
		MinioUseSSL:       useSSL,
		UploadFolder:      getEnvOrDefault("MINIO_UPLOAD_FOLDER", defaultUploadFolder),
		MaxFileSize:       defaultMaxFileSize,
	}

	if !cfg.Enabled() {
		log.Warnf("image store credentials are not set, image uploads will be disabled")
	}

	return cfg
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultAddr         = "localhost:6379"
		defaultDB           = 0
		defaultMaxRetries   = 3
		defaultDialTimeout  = 5 * time.Second
		defaultReadTimeout  = 3 * time.Second
		defaultWriteTimeout = 3 * time.Second
		defaultMenuTTL      = 3 * time.Minute
	)

	addr := getEnvOrDefault("REDIS_ADDR", defaultAddr)
	password := getEnv("REDIS_PASSWORD")
	user := getEnv("REDIS_USER")

	dbStr := getEnvOrDefault("REDIS_DB_ID", strconv.Itoa(defaultDB))
	db, err := strconv.Atoi(dbStr)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, err
	}

	maxRetriesStr := getEnvOrDefault("MAX_RETRIES", strconv.Itoa(defaultMaxRetries))
	maxRetries, err := strconv.Atoi(maxRetriesStr)
	if err != nil {
		log.Errorf(err, "invalid MAX_RETRIES")
		return nil, err
	}

	dialTimeout, err := parseDurationEnv("DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid DIAL_TIMEOUT")
		return nil, err
	}

	readTimeout, err := parseDurationEnv("READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid READ_TIMEOUT")
		return nil, err
	}

	writeTimeout, err := parseDurationEnv("WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid WRITE_TIMEOUT")
		return nil, err
	}

	menuTTL, err := parseDurationEnv("MENU_CACHE_TTL", defaultMenuTTL)
	if err != nil {
		log.Errorf(err, "invalid MENU_CACHE_TTL")
		return nil, err
	}

	timeout := readTimeout
	if writeTimeout > timeout {
		timeout = writeTimeout
	}

	return &RedisCfg{
		Addr:        addr,
		Password:    password,
		User:        user,
		DB:          db,
		MaxRetries:  maxRetries,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		MenuTTL:     menuTTL,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}
