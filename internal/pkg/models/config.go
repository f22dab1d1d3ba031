package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Auth     AuthConfig
	OAuth    OAuthConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains the nsqd address used by the notification producer
type NSQConfig struct {
	Address string
}

// JWTConfig contains session token signing configuration.
// An empty Secret is a fatal startup condition; the service refuses to run
// with unsigned tokens.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthConfig contains auth-core behavior flags resolved once at startup
type AuthConfig struct {
	CookieName string
	DebugOTP   bool // echo the OTP in the response; never enable in production
}

// OAuthConfig contains per-provider userinfo endpoints
type OAuthConfig struct {
	GoogleUserInfoURL string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
