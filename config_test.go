package folio

import (
	"testing"

	"github.com/labstack/gommon/log"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		want log.Lvl
	}{
		{"debug", log.DEBUG},
		{"info", log.INFO},
		{"WARN", log.WARN},
		{"error", log.ERROR},
		{"off", log.OFF},
		{"", log.INFO},
		{"verbose", log.INFO},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.name); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
