package main

import "testing"

func TestBuildLoggerAutoFormat(t *testing.T) {
	restoreGlobals(t)
	oldTTY := stderrIsATTY
	t.Cleanup(func() { stderrIsATTY = oldTTY })

	t.Run("auto consults the terminal", func(t *testing.T) {
		for _, tty := range []bool{true, false} {
			consulted := false
			stderrIsATTY = func() bool {
				consulted = true
				return tty
			}
			logFormat = "auto"
			if log := buildLogger(); log == nil {
				t.Fatalf("tty=%v: expected a logger", tty)
			}
			if !consulted {
				t.Fatalf("tty=%v: auto format must consult the terminal check", tty)
			}
		}
	})

	t.Run("explicit format skips the terminal check", func(t *testing.T) {
		for _, format := range []string{"json", "text", "pretty"} {
			consulted := false
			stderrIsATTY = func() bool {
				consulted = true
				return true
			}
			logFormat = format
			if log := buildLogger(); log == nil {
				t.Fatalf("format %q: expected a logger", format)
			}
			if consulted {
				t.Fatalf("format %q: explicit format must not consult the terminal check", format)
			}
		}
	})
}
