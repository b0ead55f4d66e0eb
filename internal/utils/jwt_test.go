package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/chronos/models"
	"github.com/golang-jwt/jwt/v5"
)

// loginTime is whole seconds so it survives the NumericDate round trip.
var loginTime = time.Now().Add(-time.Hour).Truncate(time.Second)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	email := "hr@agency.gov"
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, email, models.AccessToken, loginTime, time.Hour, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}
	if token.Email != email || token.Kind != models.AccessToken {
		t.Errorf("unexpected token fields: %+v", token)
	}

	claims, ok := token.Token.Claims.(*models.Claims)
	if !ok {
		t.Fatal("could not cast claims to models.Claims")
	}
	if claims.AuthTime == nil || !claims.AuthTime.Equal(loginTime) {
		t.Errorf("expected auth_time %v, got %v", loginTime, claims.AuthTime)
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != email {
		t.Errorf("expected subject %s, got %s", email, claims.Subject)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "access" {
		t.Errorf("expected audience [access], got %v", claims.Audience)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		email     string
		kind      models.TokenKind
		loginTime time.Time
		duration  time.Duration
		key       string
	}{
		{"empty issuer", "", "a@b.c", models.AccessToken, loginTime, time.Hour, "key"},
		{"empty email", "iss", "", models.AccessToken, loginTime, time.Hour, "key"},
		{"empty kind", "iss", "a@b.c", "", loginTime, time.Hour, "key"},
		{"zero login time", "iss", "a@b.c", models.AccessToken, time.Time{}, time.Hour, "key"},
		{"zero duration", "iss", "a@b.c", models.AccessToken, loginTime, 0, "key"},
		{"empty key", "iss", "a@b.c", models.AccessToken, loginTime, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.email, tt.kind, tt.loginTime, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	email := "hr@agency.gov"
	key := "secret-key"

	genToken, _ := GenerateJWTToken(issuer, email, models.RefreshToken, loginTime, 5*time.Minute, key)

	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer, models.RefreshToken)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.Email != email {
		t.Errorf("expected email %s, got %s", email, parsedToken.Email)
	}
	if parsedToken.ExpiresAt.Before(time.Now()) {
		t.Error("expected expiry in the future")
	}
	if !parsedToken.LoginTime.Equal(loginTime) {
		t.Errorf("expected login time %v, got %v", loginTime, parsedToken.LoginTime)
	}
}

func TestValidateAndParseJWTToken_MissingAuthTime(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "hr@agency.gov",
		Audience:  jwt.ClaimStrings{string(models.AccessToken)},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, "key", "iss", models.AccessToken)
	if err == nil {
		t.Error("expected token without auth_time to be rejected")
	}
}

func TestValidateAndParseJWTToken_WrongKind(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "hr@agency.gov", models.RefreshToken, loginTime, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss", models.AccessToken)
	if err == nil {
		t.Error("expected refresh token to be rejected as access token")
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "hr@agency.gov", models.AccessToken, loginTime, time.Hour, "correct-key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "iss", models.AccessToken)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	genToken, _ := GenerateJWTToken("iss", "hr@agency.gov", models.AccessToken, loginTime, -time.Second, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "iss", models.AccessToken)
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected jwt.ErrTokenExpired, got %v", err)
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "hr@agency.gov", models.AccessToken, loginTime, time.Hour, "key")

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer", models.AccessToken)
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", models.AccessToken)
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"padded", "  Bearer abc  ", "abc", false},
		{"no token", "Bearer", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
