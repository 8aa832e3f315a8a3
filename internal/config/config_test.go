package config

import (
	"testing"

	"github.com/blacktop/oodle-helper/pkg/oodle"
	"github.com/spf13/viper"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		maxSize string
		want    int64
		wantErr bool
	}{
		{
			name: "default",
			want: oodle.MaxSize,
		},
		{
			name:    "binary units",
			maxSize: "64MiB",
			want:    64 * 1024 * 1024,
		},
		{
			name:    "plain bytes",
			maxSize: "4096",
			want:    4096,
		},
		{
			name:    "zero",
			maxSize: "0",
			wantErr: true,
		},
		{
			name:    "garbage",
			maxSize: "lots",
			wantErr: true,
		},
		{
			name:    "too large",
			maxSize: "2TiB",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			if tt.maxSize != "" {
				v.Set("max-size", tt.maxSize)
			}
			got, err := LoadConfig(v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.MaxBytes() != tt.want {
				t.Errorf("MaxBytes() = %d, want %d", got.MaxBytes(), tt.want)
			}
		})
	}
}
