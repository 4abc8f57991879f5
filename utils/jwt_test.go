package utils

import "testing"

func TestGenerateAndValidateTokens(t *testing.T) {
	access, refresh, err := GenerateTokens("admin", 7)
	if err != nil {
		t.Fatalf("failed to generate tokens: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty token pair")
	}

	claims, err := ValidateToken(access)
	if err != nil {
		t.Fatalf("failed to validate access token: %v", err)
	}
	if role, _ := claims["user_role"].(string); role != "admin" {
		t.Errorf("expected role admin, got %v", claims["user_role"])
	}
	if id, _ := claims["id"].(float64); uint(id) != 7 {
		t.Errorf("expected id 7, got %v", claims["id"])
	}
}

func TestRefreshTokens(t *testing.T) {
	_, refresh, err := GenerateTokens("admin", 3)
	if err != nil {
		t.Fatalf("failed to generate tokens: %v", err)
	}

	access, newRefresh, err := RefreshTokens(refresh)
	if err != nil {
		t.Fatalf("failed to refresh tokens: %v", err)
	}
	if access == "" || newRefresh == "" {
		t.Fatal("expected non-empty refreshed token pair")
	}

	claims, err := ValidateToken(access)
	if err != nil {
		t.Fatalf("failed to validate refreshed access token: %v", err)
	}
	if id, _ := claims["id"].(float64); uint(id) != 3 {
		t.Errorf("expected id 3, got %v", claims["id"])
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestExtractRoleFromToken_BadFormat(t *testing.T) {
	if _, err := ExtractRoleFromToken("Token abc"); err == nil {
		t.Error("expected an error for a non-Bearer header")
	}
}
