package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Settings keys recognized in the key=value settings file. The file is a
// credentials/branding overlay rewritten whole by the settings API; writes
// are last-writer-wins with no locking.
const (
	settingAPIKey      = "ANTHROPIC_API_KEY"
	settingLoanOfficer = "DEFAULT_LOAN_OFFICER_NAME"
	settingCompany     = "DEFAULT_COMPANY_NAME"
	settingLocation    = "DEFAULT_LOCATION"
)

// Settings carries the user-editable subset of configuration.
type Settings struct {
	APIKey      string `json:"api_key,omitempty"`
	LoanOfficer string `json:"loan_officer,omitempty"`
	Company     string `json:"company,omitempty"`
	Location    string `json:"location,omitempty"`
}

// applySettingsFile overlays values from the settings file onto the config.
// A missing file is not an error.
func (c *Config) applySettingsFile() {
	values, err := readSettingsFile(c.SettingsFile)
	if err != nil {
		return
	}
	if v := values[settingAPIKey]; v != "" {
		c.APIKey = v
	}
	if v := values[settingLoanOfficer]; v != "" {
		c.DefaultLoanOfficer = v
	}
	if v := values[settingCompany]; v != "" {
		c.DefaultCompany = v
	}
}

// WriteSettings updates the settings file with the non-empty fields of s,
// preserving unrelated lines. The whole file is rewritten.
func (c *Config) WriteSettings(s Settings) error {
	updates := map[string]string{}
	if s.APIKey != "" {
		updates[settingAPIKey] = s.APIKey
	}
	if s.LoanOfficer != "" {
		updates[settingLoanOfficer] = s.LoanOfficer
	}
	if s.Company != "" {
		updates[settingCompany] = s.Company
	}
	if s.Location != "" {
		updates[settingLocation] = s.Location
	}
	if len(updates) == 0 {
		return nil
	}

	var lines []string
	if data, err := os.ReadFile(c.SettingsFile); err == nil {
		lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	written := map[string]bool{}
	var out []string
	for _, line := range lines {
		key, _, ok := strings.Cut(line, "=")
		if ok {
			if value, hit := updates[strings.TrimSpace(key)]; hit {
				out = append(out, fmt.Sprintf("%s=%s", strings.TrimSpace(key), value))
				written[strings.TrimSpace(key)] = true
				continue
			}
		}
		if line != "" {
			out = append(out, line)
		}
	}
	for _, key := range []string{settingAPIKey, settingLoanOfficer, settingCompany, settingLocation} {
		if value, hit := updates[key]; hit && !written[key] {
			out = append(out, fmt.Sprintf("%s=%s", key, value))
		}
	}

	if err := os.MkdirAll(filepath.Dir(c.SettingsFile), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	if err := os.WriteFile(c.SettingsFile, []byte(strings.Join(out, "\n")+"\n"), 0o600); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	// Keep the in-memory config in step for subsequent requests.
	c.applySettingsFile()
	return nil
}

func readSettingsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return values, nil
}
