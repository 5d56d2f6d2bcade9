package config

import "testing"

func TestBuildLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    LoggingConfig
		override  string
		wantError bool
	}{
		{"Defaults", LoggingConfig{}, "", false},
		{"Console format", LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"JSON format", LoggingConfig{Level: "warn", Format: "json"}, "", false},
		{"Warning alias", LoggingConfig{Level: "warning"}, "", false},
		{"Override takes precedence", LoggingConfig{Level: "bogus"}, "error", false},
		{"Invalid level", LoggingConfig{Level: "bogus"}, "", true},
		{"Invalid format", LoggingConfig{Format: "xml"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := tt.config.BuildLogger(tt.override)
			if tt.wantError {
				if err == nil {
					t.Errorf("BuildLogger() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("BuildLogger() error = %v", err)
				return
			}
			if logger == nil {
				t.Error("BuildLogger() returned nil logger")
			}
		})
	}
}
