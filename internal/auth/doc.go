// Package auth provides signup, login and bearer-token authorization for the API.
//
// Passwords are stored as bcrypt hashes. A successful login issues an HS256 token
// whose subject is the user id; the token is stateless and expires after
// AUTH_TOKEN_EXPIRY.
//
// # Configuration
//
//	AUTH_TOKEN_SECRET=<random>   # HMAC key, generated at startup if empty
//	AUTH_TOKEN_ISSUER=bookstore  # "iss" claim, checked on verify
//	AUTH_TOKEN_EXPIRY=15m        # token lifetime
//	AUTH_BCRYPT_COST=12          # bcrypt cost factor
//
// # Usage
//
// Initialize authentication in entrypoint:
//
//	tokens := auth.NewTokenManager(secret, cfg.Auth.TokenIssuer, cfg.Auth.TokenExpiry)
//	authService := auth.NewService(db, tokens, cfg.Auth)
//	authMiddleware := auth.NewMiddleware(authService)
//	api.POST("/authors/add", authMiddleware.RequireToken(), controller.Add)
//
// Extract user in handlers:
//
//	userID := auth.GetUserID(c)
package auth
