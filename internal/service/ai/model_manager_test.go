package ai

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain object", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"fence no newline", "```json{\"a\":1}```", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
		{"unclosed fence", "```json\n{\"a\":1}", `{"a":1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExtractJSON(tc.input); got != tc.want {
				t.Fatalf("ExtractJSON(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestIsRateLimitError(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"googleapi: Error 429: Resource has been exhausted", true},
		{"Rate limit reached for requests", true},
		{"quota exceeded for project", true},
		{`{"error":{"code":429,"message":"Too Many Requests"}}`, true},
		{"connection refused", false},
		{"400 Bad Request", false},
	}

	for _, tc := range cases {
		if got := isRateLimitError(errors.New(tc.msg)); got != tc.want {
			t.Fatalf("isRateLimitError(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}
	if isRateLimitError(nil) {
		t.Fatal("nil error classified as rate limit")
	}
}

func TestIsCredentialError(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"401 Unauthorized", true},
		{"API key not valid", true},
		{`{"error":{"code":403,"message":"Forbidden"}}`, true},
		{"timeout while awaiting headers", false},
	}

	for _, tc := range cases {
		if got := isCredentialError(errors.New(tc.msg)); got != tc.want {
			t.Fatalf("isCredentialError(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}
}

func TestIsServiceFailure(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"503 Service Unavailable", true},
		{"request timeout", true},
		{"429 Too Many Requests", true},
		{`{"error":{"code":500,"message":"Internal"}}`, true},
		{"invalid request payload", false},
	}

	for _, tc := range cases {
		if got := isServiceFailure(errors.New(tc.msg)); got != tc.want {
			t.Fatalf("isServiceFailure(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}
}
