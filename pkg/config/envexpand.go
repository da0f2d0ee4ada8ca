package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv substitutes environment variables into raw YAML using Go
// template syntax: {{.QAWAVE_AI_API_KEY}} renders as the value of that
// variable. Template syntax is used instead of $VAR expansion because the
// YAML is full of literal dollar signs that must survive untouched:
// scenario placeholders like ${extract.token}, regex assertions such as
// ^Bearer .*$, and passwords.
//
// Unset variables render as empty strings; the validator decides whether an
// empty value is acceptable. A malformed template falls back to the raw
// bytes, so YAML without any template syntax always passes through.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split on the first = only; values may contain = themselves.
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}

	return buf.Bytes()
}
