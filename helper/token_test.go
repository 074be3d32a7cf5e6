package helper

import (
	"testing"

	"laundry_os/model"

	"github.com/golang-jwt/jwt/v5"
)

// The signing key must be read when a token is issued, not at process start,
// so secrets that only arrive via a late-loaded .env still work.
func TestTokenRoundTrip_SecretReadAtCallTime(t *testing.T) {
	t.Setenv("JWT_SECRET", "round-trip-secret")

	claim := model.TokenClaim{
		AccountId: 7,
		Username:  "cashier1",
		Role:      "CASHIER",
	}

	signed, err := GenerateAccessToken(claim)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	token, err := ParseToken(signed)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if !token.Valid {
		t.Fatal("parsed token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("claims have type %T, want jwt.MapClaims", token.Claims)
	}
	if got, _ := claims["username"].(string); got != claim.Username {
		t.Errorf("username claim = %q, want %q", got, claim.Username)
	}
	if got, _ := claims["role"].(string); got != claim.Role {
		t.Errorf("role claim = %q, want %q", got, claim.Role)
	}
	if got, _ := claims["accountId"].(float64); uint(got) != claim.AccountId {
		t.Errorf("accountId claim = %v, want %d", got, claim.AccountId)
	}

	// A token signed under one secret must not verify under another.
	t.Setenv("JWT_SECRET", "rotated-secret")
	if token, err := ParseToken(signed); err == nil && token.Valid {
		t.Error("token verified after secret rotation")
	}
}
