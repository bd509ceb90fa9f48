package flagx

import (
	"os"
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
			name:         "short flag with separate value",
			args:         []string{"-c", "closet.yaml", "-a", "http://localhost:3001/closet"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "closet.yaml"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=alt.json", "-a", "http://x"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=alt.json"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "-y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end is kept",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-c", "-n", "5"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "several allowed flags keep order",
			args:         []string{"-a", "http://h/closet", "-l", "debug", "-f", "zap"},
			allowedFlags: []string{"-a", "-f"},
			want:         []string{"-a", "http://h/closet", "-f", "zap"},
		},
		{
			name:         "empty args",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c", func(t *testing.T) {
		os.Args = []string{"closet", "-c", "/etc/closet.yaml"}
		assert.Equal(t, "/etc/closet.yaml", ConfigFileFlag())
	})

	t.Run("long -config", func(t *testing.T) {
		os.Args = []string{"closet", "-config", "/etc/closet.json", "-a", "http://h"}
		assert.Equal(t, "/etc/closet.json", ConfigFileFlag())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"closet", "-l", "debug"}
		assert.Empty(t, ConfigFileFlag())
	})

	t.Run("last wins", func(t *testing.T) {
		os.Args = []string{"closet", "-c", "1.json", "-config", "2.yaml"}
		assert.Equal(t, "2.yaml", ConfigFileFlag())
	})
}
