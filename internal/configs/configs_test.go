package configs

import "testing"

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("STORE_PATH", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("TRANSLATE_API_KEY", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Environment != "development" {
		t.Fatalf("expected development default, got %q", cfg.Environment)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		t.Fatal("expected development JWT secret default")
	}
	if cfg.StorePath != "data/rooms.json" {
		t.Fatalf("expected default store path, got %q", cfg.StorePath)
	}
}

func TestLoadConfigProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing JWT_SECRET in production")
	}

	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("TRANSLATE_API_KEY", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for missing TRANSLATE_API_KEY in production")
	}
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for non-numeric port")
	}

	t.Setenv("PORT", "80")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for privileged port")
	}
}

func TestLoadConfigParsesOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected two origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("expected trimmed origin, got %q", cfg.AllowedOrigins[1])
	}
}
