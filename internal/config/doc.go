// Package config manages application configuration for the killpowa API.
//
// Configuration is loaded from environment variables with development
// defaults, then validated once at startup:
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil { ... }
//
// # Configuration Groups
//
//   - ServerConfig: HTTP server settings (port, timeouts, CORS origins)
//   - DatabaseConfig: SurrealDB connection settings and query timeout
//   - JWTConfig: token signing secret, issuer and TTL
//   - InviteConfig: invite code generation guard rails
//   - StreamConfig: live stream heartbeat interval
//
// # Key Environment Variables
//
//	SERVER_PORT               - HTTP server port (default: 8080)
//	DB_HOST / DB_PORT         - SurrealDB endpoint
//	DB_NAMESPACE / DB_DATABASE
//	JWT_SECRET                - token signing secret (required in production)
//	JWT_ISSUER                - token issuer (default: killpowa)
//	JWT_EXPIRATION_MINS       - token TTL in minutes (default: 14400)
//	INVITE_CODE_MAX_ATTEMPTS  - cap on uniqueness retries (0 = unbounded)
package config
