package secrets

import (
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

// KeyringService groups the engine's secrets in the OS keychain.
const KeyringService = "prospect-engine"

// Accounts under KeyringService; each doubles as the env-var fallback name.
const (
	SerpAPIKey   = "SERPAPI_KEY"
	GeminiAPIKey = "GEMINI_API_KEY"
	LeadBotToken = "LEAD_BOT_TOKEN"
	LogBotToken  = "LOG_BOT_TOKEN"
)

// Get looks the secret up in the OS keychain first, then in the environment.
func Get(account string) (string, error) {
	if v, err := keyring.Get(KeyringService, account); err == nil && strings.TrimSpace(v) != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv(account)); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("secret %s not found (set it in the keychain or via env)", account)
}

func Set(account, value string) error {
	if strings.TrimSpace(account) == "" {
		return fmt.Errorf("account name is empty")
	}
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("secret value is empty")
	}
	return keyring.Set(KeyringService, account, value)
}

func Delete(account string) error {
	if strings.TrimSpace(account) == "" {
		return fmt.Errorf("account name is empty")
	}
	return keyring.Delete(KeyringService, account)
}
