package timeline

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestStyleRoundTrip(t *testing.T) {
	styles := []Style{StyleInOut, StyleIn, StyleOut}
	for _, style := range styles {
		parsed, err := ParseStyle(style.String())
		if err != nil {
			t.Fatalf("ParseStyle(%q) failed: %v", style.String(), err)
		}
		if parsed != style {
			t.Errorf("round trip for %v: got %v", style, parsed)
		}
	}
}

func TestParseStyleDefaults(t *testing.T) {
	style, err := ParseStyle("")
	if err != nil {
		t.Fatalf("ParseStyle(\"\") failed: %v", err)
	}
	if style != StyleInOut {
		t.Errorf("empty tag should default to StyleInOut, got %v", style)
	}

	if _, err := ParseStyle("zoom-sideways"); err == nil {
		t.Error("expected error for unknown style tag")
	}
}

func TestEffectUnmarshalYAML(t *testing.T) {
	doc := `
- id: intro
  start: 2
  duration: 4
  level: 2
  center_x: 0.5
  center_y: 0.5
- id: detail
  start: 10
  duration: 3
  level: 1.8
  center_x: 0.25
  center_y: 0.75
  style: zoom-in-only
`
	var effects []Effect
	if err := yaml.Unmarshal([]byte(doc), &effects); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(effects) != 2 {
		t.Fatalf("expected 2 effects, got %d", len(effects))
	}
	if effects[0].Style != StyleInOut {
		t.Errorf("missing style should default to StyleInOut, got %v", effects[0].Style)
	}
	if effects[1].Style != StyleIn {
		t.Errorf("expected StyleIn for %q, got %v", effects[1].ID, effects[1].Style)
	}
	if effects[1].CenterX != 0.25 || effects[1].CenterY != 0.75 {
		t.Errorf("unexpected centers: (%g, %g)", effects[1].CenterX, effects[1].CenterY)
	}

	var bad []Effect
	err := yaml.Unmarshal([]byte("- {id: x, start: 0, duration: 1, level: 2, style: spin}"), &bad)
	if err == nil || !strings.Contains(err.Error(), "unknown effect style") {
		t.Errorf("expected unknown style error, got %v", err)
	}
}

func TestEffectValidate(t *testing.T) {
	valid := Effect{ID: "ok", Start: 1, Duration: 2, Level: 1.5, CenterX: 0.5, CenterY: 0.5}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid effect rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Effect)
	}{
		{"negative start", func(e *Effect) { e.Start = -1 }},
		{"zero duration", func(e *Effect) { e.Duration = 0 }},
		{"negative duration", func(e *Effect) { e.Duration = -3 }},
		{"level below one", func(e *Effect) { e.Level = 0.5 }},
		{"center_x out of range", func(e *Effect) { e.CenterX = 1.2 }},
		{"center_y out of range", func(e *Effect) { e.CenterY = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect := valid
			tt.mutate(&effect)
			if err := effect.Validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
