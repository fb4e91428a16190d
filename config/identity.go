package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// LoadOrCreateIdentity returns the device's recipient identifier, generating
// and persisting one on first run. The id is stable across restarts so the
// delivery collaborator can address this device consistently.
func LoadOrCreateIdentity(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if _, parseErr := uuid.Parse(id); parseErr == nil {
			return id, nil
		}
		// corrupt file: fall through and regenerate
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("read identity file: %w", err)
	}

	id := uuid.NewString()
	if err := os.WriteFile(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write identity file: %w", err)
	}
	return id, nil
}
