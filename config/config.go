package config

import (
	"log"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

var Cfg Config

type Config struct {
	// 服务配置
	ServerPort  string `env:"SERVER_PORT" envDefault:"8890"`
	ServerHost  string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"` // development, staging, production
	ServiceName string `env:"SERVICE_NAME" envDefault:"bistrohub"`

	// PostgreSQL 配置
	PostgreSQLHost        string `env:"POSTGRESQL_HOST" envDefault:"localhost"`
	PostgreSQLPort        string `env:"POSTGRESQL_PORT" envDefault:"5432"`
	PostgreSQLUser        string `env:"POSTGRESQL_USER" envDefault:"postgres"`
	PostgreSQLPassword    string `env:"POSTGRESQL_PASSWORD" envDefault:"postgres"`
	PostgreSQLDatabase    string `env:"POSTGRESQL_DATABASE" envDefault:"bistrohub"`
	PostgreSQLSchema      string `env:"POSTGRESQL_SCHEMA" envDefault:"public"`
	PostgreSQLSSLMode     string `env:"POSTGRESQL_SSLMODE" envDefault:"disable"`
	PostgreSQLMaxIdle     int    `env:"POSTGRESQL_MAX_IDLE" envDefault:"30"`
	PostgreSQLMaxOpen     int    `env:"POSTGRESQL_MAX_OPEN" envDefault:"200"`
	PostgreSQLReplicaHost string `env:"POSTGRESQL_REPLICA_HOST"` // 只读副本，为空时不启用读写分离

	// Redis 配置
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"bh"`

	// RabbitMQ 配置
	RabbitMQAddr     string `env:"RABBITMQ_ADDR" envDefault:"localhost"`
	RabbitMQPort     string `env:"RABBITMQ_PORT" envDefault:"5672"`
	RabbitMQUsername string `env:"RABBITMQ_USERNAME" envDefault:"guest"`
	RabbitMQPassword string `env:"RABBITMQ_PASSWORD" envDefault:"guest"`
	RabbitMQVhost    string `env:"RABBITMQ_VHOST" envDefault:"/"`

	// JWT 配置
	JWTSecret        string `env:"JWT_SECRET"` // 必填，用于签名 JWT
	JWTExpireMinutes int    `env:"JWT_EXPIRE_MINUTES" envDefault:"30"`
	JWTRefreshDays   int    `env:"JWT_REFRESH_DAYS" envDefault:"7"`

	// CSRF / 会话配置，控制台走浏览器，需要防跨站
	SessionSecret string `env:"SESSION_SECRET"`
	CSRFEnabled   bool   `env:"CSRF_ENABLED" envDefault:"false"`

	// 短信服务配置
	// 注意：AccessKey 和 SecretKey 通过阿里云 SDK 的环境变量自动获取
	// 需要设置环境变量：ALIBABA_CLOUD_ACCESS_KEY_ID 和 ALIBABA_CLOUD_ACCESS_KEY_SECRET
	SMSProvider     string `env:"SMS_PROVIDER" envDefault:"aliyun"` // aliyun, mock
	SMSSignName     string `env:"SMS_SIGN_NAME"`
	SMSTemplateCode string `env:"SMS_TEMPLATE_CODE"`

	// 加密配置
	EncryptionKey    string `env:"ENCRYPTION_KEY"` // 用于加密银行账号等敏感数据，32字节 AES-256
	PhoneHashSalt    string `env:"PHONEHASH_SALT"`
	PasswordHashSalt string `env:"PASSWORD_HASH_SALT"`

	// Snowflake ID 生成器配置
	SnowflakeMachineID  int64 `env:"SNOWFLAKE_MACHINE_ID" envDefault:"1"`
	SnowflakeDataCenter int64 `env:"SNOWFLAKE_DATACENTER_ID" envDefault:"1"`

	// OpenTelemetry 配置，OTLP_ENDPOINT 为空时不上报
	OTLPEndpoint    string  `env:"OTLP_ENDPOINT"`
	ServiceVersion  string  `env:"SERVICE_VERSION" envDefault:"dev"`
	OTelSampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"0.1"`

	// 日志配置
	LoggerLevel      string `env:"LOGGER_LEVEL" envDefault:"INFO"`
	LoggerFormat     string `env:"LOGGER_FORMAT" envDefault:"text"` // json, text
	LoggerOutputPath string `env:"LOGGER_OUTPUT_PATH" envDefault:"stdout"`

	// 速率限制配置, 配置在中间件内
	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitRPS     int  `env:"RATE_LIMIT_RPS" envDefault:"100"`

	// 验证码配置
	OTPExpireSeconds   int    `env:"OTP_EXPIRE_SECONDS" envDefault:"120"`
	OTPMaxDaily        int    `env:"OTP_MAX_DAILY" envDefault:"10"`
	OTPSliderThreshold int    `env:"OTP_SLIDER_THRESHOLD" envDefault:"2"` // 超过此次数需要滑块验证
	CaptchaProvider    string `env:"CAPTCHA_PROVIDER" envDefault:"aliyun"` // aliyun, none
	CaptchaSceneId     string `env:"CAPTCHA_SCENE_ID"`

	// 引导流程配置
	OnboardingSubmitTimeoutSeconds int `env:"ONBOARDING_SUBMIT_TIMEOUT_SECONDS" envDefault:"15"`
	ActivationHandoffDelaySeconds  int `env:"ACTIVATION_HANDOFF_DELAY_SECONDS" envDefault:"8"`
	OnboardingReminderAfterDays    int `env:"ONBOARDING_REMINDER_AFTER_DAYS" envDefault:"3"`
	SessionSnapshotTTLHours        int `env:"SESSION_SNAPSHOT_TTL_HOURS" envDefault:"720"`

	// 文件上传配置
	UploadDir         string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadMaxSizeMB   int    `env:"UPLOAD_MAX_SIZE_MB" envDefault:"10"`

	// 业务邮件确认配置
	EmailConfirmExpireMinutes int `env:"EMAIL_CONFIRM_EXPIRE_MINUTES" envDefault:"30"`
}

func init() {

	if err := godotenv.Load(); err != nil {

		log.Printf("WARN: Cannot load .env file: %v, using environment variables", err)
	}

	Cfg = Config{}
	if err := env.Parse(&Cfg); err != nil {
		log.Fatalf("Failed to parse environment variables: %v", err)
	}

	validateConfig()
}

func validateConfig() {
	if Cfg.IsProduction() {
		if Cfg.JWTSecret == "" {
			log.Fatal("JWT_SECRET is required")
		}

		if Cfg.EncryptionKey == "" {
			log.Fatal("ENCRYPTION_KEY is required (32 bytes for AES-256)")
		}
	} else {
		// 非生产环境给出可运行的默认值，本地开发和测试不需要完整的 .env
		if Cfg.JWTSecret == "" {
			Cfg.JWTSecret = "bistrohub-dev-jwt-secret"
			log.Printf("WARN: JWT_SECRET is not set, using insecure development default")
		}
		if Cfg.EncryptionKey == "" {
			Cfg.EncryptionKey = "0123456789abcdef0123456789abcdef"
			log.Printf("WARN: ENCRYPTION_KEY is not set, using insecure development default")
		}
	}

	if len(Cfg.EncryptionKey) != 32 {
		log.Fatal("ENCRYPTION_KEY must be exactly 32 bytes for AES-256")
	}

	if Cfg.CSRFEnabled && Cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET is required when CSRF_ENABLED is set")
	}

	if Cfg.SMSSignName == "" {
		log.Printf("WARN: SMS_SIGN_NAME is not set, SMS service may not work properly")
	}
	if Cfg.SMSTemplateCode == "" {
		log.Printf("WARN: SMS_TEMPLATE_CODE is not set, SMS service may not work properly")
	}
}

func (c *Config) GetDSN() string {
	return "host=" + c.PostgreSQLHost +
		" port=" + c.PostgreSQLPort +
		" user=" + c.PostgreSQLUser +
		" password=" + c.PostgreSQLPassword +
		" dbname=" + c.PostgreSQLDatabase +
		" sslmode=" + c.PostgreSQLSSLMode +
		" search_path=" + c.PostgreSQLSchema
}

func (c *Config) GetReplicaDSN() string {
	if c.PostgreSQLReplicaHost == "" {
		return ""
	}
	return "host=" + c.PostgreSQLReplicaHost +
		" port=" + c.PostgreSQLPort +
		" user=" + c.PostgreSQLUser +
		" password=" + c.PostgreSQLPassword +
		" dbname=" + c.PostgreSQLDatabase +
		" sslmode=" + c.PostgreSQLSSLMode +
		" search_path=" + c.PostgreSQLSchema
}

func (c *Config) GetRabbitMQURL() string {
	return "amqp://" + c.RabbitMQUsername + ":" + c.RabbitMQPassword + "@" + c.RabbitMQAddr + ":" + c.RabbitMQPort + c.RabbitMQVhost
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
