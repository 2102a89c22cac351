package middleware

import (
	"errors"
	"net/http"
	"strings"

	"fieldops/internal/domain/entities"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const identityContextKey = "fieldops.identity"

var (
	errMissingBearer = errors.New("missing bearer token")
	errMissingClaims = errors.New("token lacks org_id or sub")
)

// Claims carried by access tokens. Subject is the acting user.
type Claims struct {
	OrgID string `json:"org_id"`
	jwt.RegisteredClaims
}

// IdentityConfig configures token verification.
type IdentityConfig struct {
	Secret []byte
	// Issuer is checked when set.
	Issuer string
}

// RequireIdentity resolves the tenant and actor from an HS256 bearer token
// and stores them on the request. Requests without a valid token stop here
// with 401.
func RequireIdentity(cfg IdentityConfig) gin.HandlerFunc {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		identity, err := parseIdentity(parser, cfg.Secret, c.GetHeader("Authorization"))
		if err != nil {
			logger().WarnContext(c.Request.Context(), "identity rejected",
				"operation", "resolve_identity",
				"outcome", "failure",
				"request_id", RequestIDFrom(c),
				"error", err.Error(),
			)
			appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(identityContextKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity resolved by RequireIdentity.
func IdentityFrom(c *gin.Context) (entities.Identity, bool) {
	v, ok := c.Get(identityContextKey)
	if !ok {
		return entities.Identity{}, false
	}
	identity, ok := v.(entities.Identity)
	return identity, ok && identity.Valid()
}

// WithIdentity stores identity on c. Used by tests and internal callers that
// resolve identity some other way.
func WithIdentity(c *gin.Context, identity entities.Identity) {
	c.Set(identityContextKey, identity)
}

func parseIdentity(parser *jwt.Parser, secret []byte, header string) (entities.Identity, error) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return entities.Identity{}, errMissingBearer
	}
	raw := strings.TrimSpace(header[len(prefix):])

	var claims Claims
	_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return entities.Identity{}, err
	}

	identity := entities.Identity{
		OrgID:   strings.TrimSpace(claims.OrgID),
		ActorID: strings.TrimSpace(claims.Subject),
	}
	if !identity.Valid() {
		return entities.Identity{}, errMissingClaims
	}
	return identity, nil
}
