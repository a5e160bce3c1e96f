package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Configuration
		wantErr bool
	}{
		{name: "default", cfg: DefaultConfiguration()},
		{name: "debug", cfg: Configuration{Level: DEBUG_LEVEL, TimeFormat: "15:04:05"}},
		{name: "negative level", cfg: Configuration{Level: -1, TimeFormat: "15:04:05"}, wantErr: true},
		{name: "level too high", cfg: Configuration{Level: DEBUG_LEVEL + 1, TimeFormat: "15:04:05"}, wantErr: true},
		{name: "empty time format", cfg: Configuration{Level: INFO_LEVEL}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
