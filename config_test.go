package pico

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	c, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if c.MaxNodes != defaultMaxNodes {
		t.Fatalf("MaxNodes = %d, want %d", c.MaxNodes, defaultMaxNodes)
	}
	if c.MinRetainedEpochs != defaultMinRetainedEpochs {
		t.Fatalf("MinRetainedEpochs = %d, want %d", c.MinRetainedEpochs, defaultMinRetainedEpochs)
	}
	if c.Logger == nil {
		t.Fatalf("Logger not defaulted")
	}
}

func TestNewConfigRejectsNonPositiveMaxNodes(t *testing.T) {
	if _, err := NewConfig(WithMaxNodes(0)); err == nil {
		t.Fatalf("expected an error for MaxNodes=0")
	}
	if _, err := NewConfig(WithMaxNodes(-1)); err == nil {
		t.Fatalf("expected an error for a negative MaxNodes")
	}
}

func TestNewConfigRejectsMissingConfigPath(t *testing.T) {
	if _, err := NewConfig(WithConfigPath("/does/not/exist.toml")); err == nil {
		t.Fatalf("expected an error for a nonexistent config path")
	}
}

func TestNewConfigAppliesOverrides(t *testing.T) {
	c, err := NewConfig(WithMaxNodes(5), WithMinRetainedEpochs(0), WithWatch(true))
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if c.MaxNodes != 5 || c.MinRetainedEpochs != 0 || !c.Watch {
		t.Fatalf("overrides not applied: %+v", c)
	}
}
