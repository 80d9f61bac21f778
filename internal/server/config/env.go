package config

import "github.com/dmitrijs2005/agenda/internal/envx"

// parseEnv overlays AGENDA_* variables (and ./.env) onto config.
func parseEnv(config *Config) {
	envx.LoadDotEnv()

	envx.String(&config.EndpointAddrGRPC, "GRPC_ADDR")
	envx.String(&config.DatabaseDSN, "DATABASE_DSN")
	envx.String(&config.SecretKey, "SECRET_KEY")
	envx.Duration(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_TTL")
	envx.String(&config.S3RootUser, "S3_ROOT_USER")
	envx.String(&config.S3RootPassword, "S3_ROOT_PASSWORD")
	envx.String(&config.S3Bucket, "S3_BUCKET")
	envx.String(&config.S3Region, "S3_REGION")
	envx.String(&config.S3BaseEndpoint, "S3_BASE_ENDPOINT")
	envx.Duration(&config.ExportURLValidity, "EXPORT_URL_TTL")
	envx.String(&config.LogLevel, "LOG_LEVEL")
}
