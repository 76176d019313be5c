package utils

import (
	"testing"
	"time"
)

func TestParseDateFromLogFileName(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		filename string
		ok       bool
	}{
		{"run.log.2025-10-28", true},
		{"gin.log.2025-01-02", true},
		{"run.log", false},
		{"run", false},
		{"run.log.not-a-date", false},
	}
	for _, tt := range tests {
		if _, ok := ParseDateFromLogFileName(tt.filename, loc); ok != tt.ok {
			t.Errorf("ParseDateFromLogFileName(%q) ok = %v, 期望 %v", tt.filename, ok, tt.ok)
		}
	}

	d, ok := ParseDateFromLogFileName("run.log.2025-10-28", loc)
	if !ok || d.Format("2006-01-02") != "2025-10-28" {
		t.Errorf("解析结果 = %v", d)
	}
}

func TestNumberFormat(t *testing.T) {
	if got := NumberFormat(3.14159); got != 3.14 {
		t.Errorf("NumberFormat(3.14159) = %v", got)
	}
	if got := NumberFormat(3.14159, 3); got != 3.142 {
		t.Errorf("NumberFormat(3.14159, 3) = %v", got)
	}
}
