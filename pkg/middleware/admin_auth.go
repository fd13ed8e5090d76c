package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/NeuralTrust/TrustAssess/pkg/common"
	"github.com/NeuralTrust/TrustAssess/pkg/infra/auth/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const bearerScheme = "bearer"

var (
	errNoAuthorization  = errors.New("authorization required")
	errBadAuthorization = errors.New("invalid authorization format")
	errEmptyToken       = errors.New("empty token provided")
)

// adminAuthMiddleware guards the endpoints that change shared state: corpus
// edits and recomputation. Tokens must carry the admin role.
type adminAuthMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

func NewAdminAuthMiddleware(logger *logrus.Logger, jwtManager jwt.Manager) Middleware {
	return &adminAuthMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *adminAuthMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token, err := bearerToken(ctx.Get(fiber.HeaderAuthorization))
		if err != nil {
			m.logger.WithError(err).Debug("admin request without usable credentials")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}

		claims, err := m.jwtManager.ValidateToken(token)
		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token expired"})
		case err != nil:
			m.logger.WithError(err).Debug("invalid admin token")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		if claims.Role != jwt.AdminRole {
			m.logger.WithFields(logrus.Fields{
				"subject": claims.Subject,
				"role":    claims.Role,
				"path":    ctx.Path(),
			}).Warn("admin endpoint called without admin role")
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Admin role required"})
		}

		m.logger.WithFields(logrus.Fields{
			"subject": claims.Subject,
			"method":  ctx.Method(),
			"path":    ctx.Path(),
		}).Info("admin request")

		ctx.Locals(string(common.AdminSubjectContextKey), claims.Subject)
		ctx.SetUserContext(context.WithValue(ctx.UserContext(), common.AdminSubjectContextKey, claims.Subject))
		return ctx.Next()
	}
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errNoAuthorization
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", errBadAuthorization
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}
