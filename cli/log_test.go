package cli

import (
	"os"
	"testing"

	"github.com/ardnew/psplibdoc/log"
)

func TestLogConfig_Scan(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate values",
			args: []string{"--log-level", "debug", "--log-format", "json", "x"},
			want: logConfig{Level: "debug", Format: "json", Pretty: true},
		},
		{
			name: "inline values",
			args: []string{"--log-level=trace", "--log-time-layout=none"},
			want: logConfig{Level: "trace", TimeLayout: "none", Pretty: true},
		},
		{
			name: "booleans",
			args: []string{"--log-caller", "--no-log-pretty"},
			want: logConfig{Caller: true},
		},
		{
			name: "explicit booleans",
			args: []string{"--log-caller=false", "--no-log-pretty=false"},
			want: logConfig{Pretty: true},
		},
		{
			name: "value is not a flag",
			args: []string{"--log-level", "--log-caller"},
			want: logConfig{Caller: true, Pretty: true},
		},
		{
			name: "stops at terminator",
			args: []string{"--", "--log-level", "debug"},
			want: logConfig{Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if f != tt.want {
				t.Errorf("scan(%q) = %+v, want %+v", tt.args, f, tt.want)
			}
		})
	}
}

func TestLogConfig_Scan_ConfiguresDefault(t *testing.T) {
	t.Cleanup(func() { log.Config(log.WithDefaults(os.Stderr)) })

	var f logConfig
	f.scan([]string{"--log-level=debug", "--log-format=json"})

	if got := log.Default().Level(); got != log.LevelDebug {
		t.Errorf("default level = %v, want debug", got)
	}

	if got := log.Default().Format(); got != log.FormatJSON {
		t.Errorf("default format = %v, want json", got)
	}
}

func TestLogConfig_Vars(t *testing.T) {
	var f logConfig

	vars := f.vars()

	if vars["logLevel"] != "warn" {
		t.Errorf("logLevel = %q, want warn", vars["logLevel"])
	}

	if vars["logLevelEnum"] != "trace,debug,info,warn,error" {
		t.Errorf("logLevelEnum = %q", vars["logLevelEnum"])
	}

	if vars["logFormatEnum"] != "text,json" {
		t.Errorf("logFormatEnum = %q", vars["logFormatEnum"])
	}
}
