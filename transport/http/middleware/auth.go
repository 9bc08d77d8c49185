package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"salon/config"
	"salon/infras/jwt"
	"salon/infras/otel"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/transport/http/response"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	cfg        *config.Config
}

func NewAuthMiddleware(jwtService jwt.JWT, otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		jwtService: jwtService,
		otel:       otel,
		cfg:        cfg,
	}
}

// Auth validates the bearer token and puts the acting user and their studio on the context.
// Requests already authenticated by APIKey pass through.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		if isInternal(ctx) {
			next.ServeHTTP(writer, request)

			return
		}

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		claims, err := m.claims(request.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyStudioID, claims.StudioID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.ID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// claims turns the Authorization header into verified claims or a 401.
func (m *authImpl) claims(header string) (*jwt.Claims, error) {
	if header == "" {
		return nil, failure.Unauthorized("Missing authorization header")
	}

	token, err := jwt.ExtractTokenFromHeader(header)
	if err != nil {
		return nil, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.ValidateToken(token)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, jwt.ErrExpiredToken):
		return nil, failure.Unauthorized("Token has expired")
	case errors.Is(err, jwt.ErrInvalidClaim):
		return nil, failure.Unauthorized("Invalid token claims")
	default:
		return nil, failure.Unauthorized("Invalid token")
	}
}

// APIKey authenticates internal callers such as the notification sender. They act as the
// system user on the studio named in the X-Studio-ID header.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)
		if apiKey == "" {
			next.ServeHTTP(writer, request)

			return
		}

		ctx := request.Context()

		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		scope.SetAttribute("http.source", "internal")

		var err error

		studioID := request.Header.Get(constant.RequestHeaderStudioID)

		switch {
		case m.cfg.App.APIKey == "" || subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.cfg.App.APIKey)) != 1:
			err = failure.ForbiddenError
		case studioID == "":
			err = failure.BadRequestFromString("missing " + constant.RequestHeaderStudioID + " header")
		}

		if err != nil {
			scope.TraceError(err)
			response.WithError(writer, err)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyInternal, true)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ActorSystem)
		ctx = context.WithValue(ctx, constant.ContextKeyStudioID, studioID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// InternalOnly admits only requests authenticated by APIKey.
func InternalOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if !isInternal(request.Context()) {
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func isInternal(ctx context.Context) bool {
	internal, _ := ctx.Value(constant.ContextKeyInternal).(bool)

	return internal
}
