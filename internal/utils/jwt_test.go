package utils

import (
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenClaims(t *testing.T) {
    const secret = "test-secret"
    at, err := NewAccessToken(secret, 42, "driver", "FLEET-001", "d@example.com", 15)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    if at.Token == "" {
        t.Fatal("empty token string")
    }
    if remaining := time.Until(at.Exp); remaining < 14*time.Minute || remaining > 16*time.Minute {
        t.Errorf("expiry %v not ~15m out", at.Exp)
    }

    tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        t.Fatalf("parse signed token: %v (valid=%v)", err, tok != nil && tok.Valid)
    }
    claims := tok.Claims.(jwt.MapClaims)
    if got := claims["sub"].(float64); uint64(got) != 42 {
        t.Errorf("sub = %v, want 42", got)
    }
    if claims["role"] != "driver" {
        t.Errorf("role = %v, want driver", claims["role"])
    }
    if claims["company_id"] != "FLEET-001" {
        t.Errorf("company_id = %v, want FLEET-001", claims["company_id"])
    }
    if claims["email"] != "d@example.com" {
        t.Errorf("email = %v, want d@example.com", claims["email"])
    }
}

func TestNewAccessTokenWrongSecret(t *testing.T) {
    at, err := NewAccessToken("right", 1, "admin", "FLEET-001", "a@example.com", 5)
    if err != nil {
        t.Fatalf("NewAccessToken: %v", err)
    }
    _, err = jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
        return []byte("wrong"), nil
    })
    if err == nil {
        t.Fatal("token verified with the wrong secret")
    }
}

func TestRefreshTokenHashing(t *testing.T) {
    rt, err := NewRefreshToken(30)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if len(rt.Raw) != 96 {
        t.Errorf("raw token length = %d, want 96 hex chars", len(rt.Raw))
    }
    h1 := HashRefreshRaw(rt.Raw)
    h2 := HashRefreshRaw(rt.Raw)
    if h1 != h2 {
        t.Error("hashing is not deterministic")
    }
    if h1 == rt.Raw {
        t.Error("hash must differ from the raw token")
    }

    other, err := NewRefreshToken(30)
    if err != nil {
        t.Fatalf("NewRefreshToken: %v", err)
    }
    if other.Raw == rt.Raw {
        t.Error("two refresh tokens collided")
    }
}
