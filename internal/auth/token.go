package auth

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

// GenerateToken mints the signed access token for one session. The session
// uuid in the claims makes every token unique even for back-to-back
// sign-ins of the same user.
func GenerateToken(secret string, sessionID, userID uuid.UUID, loginAt, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sessionID": sessionID.String(),
		"userID":    userID.String(),
		"iat":       loginAt.Unix(),
		"exp":       expiresAt.Unix(),
	})
	return token.SignedString([]byte(secret))
}

// VerifyToken checks the token's signature and structure. Claim validation
// is skipped on purpose: expiry and sign-out state live in the session
// store, which is the authority for both.
func VerifyToken(tokenString, secret string) error {
	parser := &jwt.Parser{SkipClaimsValidation: true}
	token, err := parser.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return jwt.ErrSignatureInvalid
	}
	return nil
}
