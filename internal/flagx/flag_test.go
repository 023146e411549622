package flagx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-a", "http://api:8080", "-d", "state.db"},
			allowedFlags: []string{"-a"},
			want:         []string{"-a", "http://api:8080"},
		},
		{
			name:         "equals form",
			args:         []string{"--config=skillhub.yaml", "-a", "http://api:8080"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=skillhub.yaml"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "trailing flag without value kept",
			args:         []string{"-t"},
			allowedFlags: []string{"-t"},
			want:         []string{"-t"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-l", "debug"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-e", "one.env", "-e", "two.env"},
			allowedFlags: []string{"-e"},
			want:         []string{"-e", "one.env", "-e", "two.env"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("FilterArgs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	t.Run("short form", func(t *testing.T) {
		assert.Equal(t, "/etc/skillhub.json", ConfigFileFlag([]string{"-c", "/etc/skillhub.json"}))
	})

	t.Run("long form with equals", func(t *testing.T) {
		assert.Equal(t, "cfg.yaml", ConfigFileFlag([]string{"-a", "http://x", "--config=cfg.yaml"}))
	})

	t.Run("absent", func(t *testing.T) {
		assert.Empty(t, ConfigFileFlag([]string{"-a", "http://x"}))
	})

	t.Run("last wins", func(t *testing.T) {
		assert.Equal(t, "2.json", ConfigFileFlag([]string{"-c", "1.json", "-config", "2.json"}))
	})
}

func TestEnvFileFlag(t *testing.T) {
	assert.Equal(t, ".env.local", EnvFileFlag([]string{"-e", ".env.local", "-l", "debug"}))
	assert.Empty(t, EnvFileFlag(nil))
}
