package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"whitespace", "   \t\n", []string{}},
		{"stop words only", "What is the", []string{}},
		{"case folded", "MisCommunication", []string{"miscommunication"}},
		{"punctuation separates", "inter-agent/misalignment!", []string{"inter", "agent", "misalignment"}},
		{"plural stemmed", "agents goals", []string{"agent", "goal"}},
		{"ies to y", "priorities", []string{"priority"}},
		{"duplicates dropped", "agent Agent agents", []string{"agent"}},
		{"stop word checked before stemming", "solutions examples", []string{}},
		{"stop word checked after stemming", "shows explains lists", []string{}},
		{"stemmed stop word among content", "Explains agent conflicts", []string{"agent", "conflict"}},
		{"full width", "Ｍｉｓｃｏｍｍｕｎｉｃａｔｉｏｎ", []string{"miscommunication"}},
		{"digits kept", "phase 2 rollout", []string{"phase", "2", "rollout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func TestStem(t *testing.T) {
	tests := map[string]string{
		"failures":   "failure",
		"issues":     "issue",
		"models":     "model",
		"policies":   "policy",
		"ties":       "tie",
		"loss":       "loss",
		"consensus":  "consensus",
		"analysis":   "analysis",
		"gas":        "gas",
		"bus":        "bus",
		"agent":      "agent",
		"objectives": "objective",
	}
	for in, want := range tests {
		assert.Equal(t, want, Stem(in), "Stem(%q)", in)
	}
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.True(t, IsStopWord("solutions"))
	assert.False(t, IsStopWord("agent"))
}
