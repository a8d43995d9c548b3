package llm

import (
	"testing"
)

func TestGetGuidelines_KnownTemplate(t *testing.T) {
	got := GetGuidelines("template-1")
	want := "Use an IMRaD structure. Keep language formal and concise. Add clear headings."
	if got != want {
		t.Errorf("GetGuidelines(template-1) = %q, want stored guidelines", got)
	}
}

func TestGetGuidelines_UnknownTemplate(t *testing.T) {
	for _, id := range []string{"", "unknown-template-id", "Template-1"} {
		if got := GetGuidelines(id); got != FallbackGuidelines {
			t.Errorf("GetGuidelines(%q) = %q, want fallback", id, got)
		}
	}
}
