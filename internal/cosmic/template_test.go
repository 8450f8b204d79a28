package cosmic

import (
	"context"
	"strings"
	"testing"

	"github.com/orbitcampus/orbit-backend/internal/matching"
	"github.com/orbitcampus/orbit-backend/internal/zodiac"
)

func TestTemplateDescriberBands(t *testing.T) {
	describer := NewTemplateDescriber()
	a := &matching.Candidate{Sun: zodiac.Leo}
	b := &matching.Candidate{Sun: zodiac.Sagittarius}

	tests := []struct {
		score    int
		fragment string
	}{
		{93, "written in the stars"},
		{80, "written in the stars"},
		{79, "same orbit by accident"},
		{60, "same orbit by accident"},
		{59, "main character duo"},
		{12, "main character duo"},
	}

	for _, tt := range tests {
		text, err := describer.Describe(context.Background(), a, b, tt.score)
		if err != nil {
			t.Fatalf("Describe(%d) failed: %v", tt.score, err)
		}
		if !strings.Contains(text, tt.fragment) {
			t.Errorf("score %d: blurb %q missing %q", tt.score, text, tt.fragment)
		}
		if !strings.Contains(text, "Leo") || !strings.Contains(text, "Sagittarius") {
			t.Errorf("score %d: blurb %q missing sun signs", tt.score, text)
		}
	}
}

func TestTemplateDescriberDeterministic(t *testing.T) {
	describer := NewTemplateDescriber()
	a := &matching.Candidate{Sun: zodiac.Virgo}
	b := &matching.Candidate{Sun: zodiac.Taurus}

	first, _ := describer.Describe(context.Background(), a, b, 88)
	second, _ := describer.Describe(context.Background(), a, b, 88)
	if first != second {
		t.Error("template describer should be deterministic")
	}
}

func TestTemplateDescriberUnknownSun(t *testing.T) {
	describer := NewTemplateDescriber()
	a := &matching.Candidate{Sun: zodiac.Unknown}
	b := &matching.Candidate{Sun: zodiac.Pisces}

	text, err := describer.Describe(context.Background(), a, b, 50)
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if !strings.Contains(text, "Cosmic") {
		t.Errorf("unknown sun should read as Cosmic: %q", text)
	}
}
