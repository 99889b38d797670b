package auth

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codr1/Matchday/internal/api/apiutil"
	"github.com/codr1/Matchday/internal/api/authz"
	"github.com/codr1/Matchday/internal/db"
	dbgen "github.com/codr1/Matchday/internal/db/generated"
	"github.com/codr1/Matchday/internal/leagues"
	"github.com/codr1/Matchday/internal/ratelimit"
)

const authQueryTimeout = 5 * time.Second

var (
	queries    *dbgen.Queries
	tokens     *TokenManager
	limiter    *ratelimit.Limiter
	trustProxy bool
	initOnce   sync.Once
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(q *dbgen.Queries, tokenManager *TokenManager, loginLimiter *ratelimit.Limiter, trustProxyHeaders bool) {
	if q == nil || tokenManager == nil {
		return
	}
	initOnce.Do(func() {
		queries = q
		tokens = tokenManager
		limiter = loginLimiter
		trustProxy = trustProxyHeaders
	})
}

// POST /api/v1/users/register
func HandleRegister(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if queries == nil {
		logger.Error().Msg("Database queries not initialized")
		apiutil.WriteErrorMessage(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	creds, err := decodeCredentials(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	hash, err := HashPassword(creds.Password)
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to hash password", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), authQueryTimeout)
	defer cancel()

	user, err := queries.CreateUser(ctx, dbgen.CreateUserParams{
		Username:     creds.Username,
		PasswordHash: hash,
		Role:         authz.RoleUser,
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			apiutil.WriteError(w, r, leagues.Conflict("username already exists"))
			return
		}
		apiutil.WriteError(w, r, leagues.Storage("failed to register user", err))
		return
	}

	logger.Info().Int64("user_id", user.ID).Msg("User registered")
	apiutil.WriteOK(w, r, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username, Role: user.Role})
}

// POST /api/v1/users/login
func HandleLogin(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())
	if queries == nil || tokens == nil {
		logger.Error().Msg("Auth handlers not initialized")
		apiutil.WriteErrorMessage(w, r, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	creds, err := decodeCredentials(r)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	ip := ratelimit.GetClientIP(r, trustProxy)
	if limiter != nil {
		if result := limiter.CheckLogin(creds.Username, ip); !result.Allowed {
			ratelimit.LogRateLimitExceeded(r.Context(), creds.Username, ip, result.Reason)
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(result.RetryAfter.Seconds()))))
			apiutil.WriteErrorMessage(w, r, http.StatusTooManyRequests, "too many login attempts, try again later")
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), authQueryTimeout)
	defer cancel()

	user, err := queries.GetUserByUsername(ctx, creds.Username)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		apiutil.WriteError(w, r, leagues.Storage("failed to load user", err))
		return
	}
	if err != nil || !VerifyPassword(user.PasswordHash, creds.Password) {
		if limiter != nil && limiter.RecordFailure(creds.Username, ip) {
			logger.Warn().Str("identifier", ratelimit.SanitizeIdentifier(creds.Username)).Msg("Login locked out")
		}
		apiutil.WriteErrorMessage(w, r, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if limiter != nil {
		limiter.Reset(creds.Username)
	}

	token, expiresAt, err := tokens.Issue(user)
	if err != nil {
		apiutil.WriteError(w, r, leagues.Storage("failed to issue token", err))
		return
	}

	logger.Info().Int64("user_id", user.ID).Msg("User logged in")
	apiutil.WriteOK(w, r, http.StatusOK, loginResponse{
		Message:   "login successful",
		Token:     token,
		ExpiresAt: expiresAt.UTC(),
	})
}

type principalResponse struct {
	ID   int64  `json:"id"`
	Role string `json:"role"`
}

// GET /api/v1/users/me
func HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := authz.RequireUser(r.Context())
	if err != nil {
		apiutil.WriteErrorMessage(w, r, http.StatusUnauthorized, "access denied: no token provided")
		return
	}
	apiutil.WriteOK(w, r, http.StatusOK, principalResponse{ID: user.ID, Role: user.Role})
}

func decodeCredentials(r *http.Request) (credentialsRequest, error) {
	var creds credentialsRequest
	if err := apiutil.DecodeJSON(r, &creds); err != nil {
		return credentialsRequest{}, err
	}
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return credentialsRequest{}, leagues.Validation("username and password are required")
	}
	if len(creds.Password) > maxPasswordBytes {
		return credentialsRequest{}, leagues.Validation(errPasswordTooLong.Error())
	}
	return creds, nil
}
