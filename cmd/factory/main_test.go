package main

import "testing"

func TestRealMain_InvalidConfig(t *testing.T) {
	t.Setenv("FACTORY_TPS", "0")
	if code := realMain(); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
}

func TestStartProfile_UnknownMode(t *testing.T) {
	if p := startProfile("trace"); p != nil {
		p.Stop()
		t.Error("profiler started for unknown mode")
	}
}
