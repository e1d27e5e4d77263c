package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, doc string) Value {
	t.Helper()
	v, err := Parse([]byte(doc))
	require.NoError(t, err)
	return v
}

func TestResolveBoolean_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    Value
		expected bool
	}{
		{"true passes through", Bool(true), true},
		{"false passes through", Bool(false), false},
		{"nonzero number", Number(1), true},
		{"negative number", Number(-2.5), true},
		{"zero", Number(0), false},
		{"uppercase yes", String("YES"), true},
		{"padded true", String("  True "), true},
		{"one", String("1"), true},
		{"zero string", String("0"), false},
		{"no", String("no"), false},
		{"empty string", String(""), false},
		{"arbitrary text", String("si"), false},
		{"null", Null(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveBoolean(tt.input))
		})
	}
}

func TestResolveBoolean_Composites(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected bool
	}{
		{"primary element wins", `[{"value":"no"},{"value":"true","primary":true}]`, true},
		{"all false elements", `[{"value":"no"},false,0,""]`, false},
		{"any truthy element", `[0, "yes"]`, true},
		{"empty array", `[]`, false},
		{"object value", `{"value":"1"}`, true},
		{"object value beats checked", `{"value":false,"checked":true}`, false},
		{"object checked", `{"checked":true}`, true},
		{"object without keys", `{"label":"x"}`, false},
		{"nested object", `{"value":{"checked":"yes"}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveBoolean(mustParse(t, tt.doc)))
		})
	}
}

func TestResolveBoolean_MissingFieldIsFalse(t *testing.T) {
	var fields Fields
	assert.False(t, ResolveBoolean(fields.Get("absent")))
}

func TestResolvePrimaryValue(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected string
		found    bool
	}{
		{"plain string trimmed", `"  ana@example.com "`, "ana@example.com", true},
		{"blank string", `"   "`, "", false},
		{"null", `null`, "", false},
		{"empty array", `[]`, "", false},
		{"primary flag wins", `[{"value":"a@x.io","primary":false},{"value":"b@x.io","primary":true}]`, "b@x.io", true},
		{"string primary flag", `[{"value":"a@x.io"},{"value":"b@x.io","primary":"yes"}]`, "b@x.io", true},
		{"first non-empty without primary", `[{"value":""},{"value":" c@x.io "}]`, "c@x.io", true},
		{"empty primary falls back", `[{"value":"d@x.io"},{"value":"","primary":true}]`, "d@x.io", true},
		{"array of strings", `["", "600111222"]`, "600111222", true},
		{"numeric value", `[{"value":600111222,"primary":true}]`, "600111222", true},
		{"single object", `{"value":"e@x.io","primary":true}`, "e@x.io", true},
		{"object without value", `{"label":"work"}`, "", false},
		{"object with only checked", `{"checked":true}`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolvePrimaryValue(mustParse(t, tt.doc))
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveNumber(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected float64
		found    bool
	}{
		{"number", `3`, 3, true},
		{"dot decimal", `"2.5"`, 2.5, true},
		{"comma decimal", `" 7,5 "`, 7.5, true},
		{"text", `"abc"`, 0, false},
		{"empty", `""`, 0, false},
		{"null", `null`, 0, false},
		{"bool", `true`, 0, false},
		{"object value", `{"value":"4"}`, 4, true},
		{"array first numeric", `["x", 6]`, 6, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveNumber(mustParse(t, tt.doc))
			assert.Equal(t, tt.found, ok)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestResolveString(t *testing.T) {
	got, ok := ResolveString(mustParse(t, `{"name":"Madrid"}`))
	assert.True(t, ok)
	assert.Equal(t, "Madrid", got)

	got, ok = ResolveString(Number(16))
	assert.True(t, ok)
	assert.Equal(t, "16", got)

	_, ok = ResolveString(Bool(true))
	assert.False(t, ok)
}

func TestResolveID(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		expected int64
		found    bool
	}{
		{"bare number", `42`, 42, true},
		{"numeric string", `"42"`, 42, true},
		{"reference object", `{"value":7,"name":"Acme"}`, 7, true},
		{"id member", `{"id":9}`, 9, true},
		{"zero", `0`, 0, false},
		{"fraction", `1.5`, 0, false},
		{"null", `null`, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveID(mustParse(t, tt.doc))
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
