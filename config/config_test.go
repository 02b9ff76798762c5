package config

import (
	"sync"
	"testing"
)

func TestConfigDefault(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "set")
	if got := ConfigDefault("CONFIG_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("set variable = %q, want set", got)
	}
	if got := ConfigDefault("CONFIG_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("unset variable = %q, want fallback", got)
	}
}

func TestConfigConcurrentFirstUse(t *testing.T) {
	t.Setenv("CONFIG_TEST_RACE", "value")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := Config("CONFIG_TEST_RACE"); got != "value" {
				t.Errorf("Config = %q, want value", got)
			}
		}()
	}
	wg.Wait()
}
