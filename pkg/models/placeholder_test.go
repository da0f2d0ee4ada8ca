package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholderNames(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []string
	}{
		{
			name:     "no placeholders",
			template: "/orders/42",
			want:     nil,
		},
		{
			name:     "single reference",
			template: "/orders/${order_id}",
			want:     []string{"order_id"},
		},
		{
			name:     "dotted namespaces",
			template: "Bearer ${env.API_KEY} ${random.uuid}",
			want:     []string{"env.API_KEY", "random.uuid"},
		},
		{
			name:     "duplicates collapse in first-appearance order",
			template: "${b}/${a}/${b}/${a}",
			want:     []string{"b", "a"},
		},
		{
			name:     "name must start with letter or underscore",
			template: "${1bad} ${_ok}",
			want:     []string{"_ok"},
		},
		{
			name:     "bare braces and dollars are not references",
			template: "{order} $order ${}",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlaceholderNames(tt.template))
		})
	}
}

func TestIsEnvPlaceholder(t *testing.T) {
	assert.True(t, IsEnvPlaceholder("env.API_KEY"))
	assert.True(t, IsEnvPlaceholder("env.x"))
	assert.False(t, IsEnvPlaceholder("env."), "empty key is not a reference")
	assert.False(t, IsEnvPlaceholder("environment"))
	assert.False(t, IsEnvPlaceholder("random.uuid"))
}

func TestIsSyntheticPlaceholder(t *testing.T) {
	for _, name := range []string{"random.uuid", "random.email", "random.string", "random.int"} {
		assert.True(t, IsSyntheticPlaceholder(name), "%q should be synthetic", name)
	}
	assert.False(t, IsSyntheticPlaceholder("random.float"))
	assert.False(t, IsSyntheticPlaceholder("env.API_KEY"))
	assert.False(t, IsSyntheticPlaceholder("uuid"))
}

func TestStepPlaceholderNames(t *testing.T) {
	step := &Step{
		Endpoint: "${base}/orders/${extract.order_id}",
		Headers: map[string]string{
			"Authorization": "Bearer ${env.TOKEN}",
		},
		Body: json.RawMessage(`{"couponCode":"${env.COUPON}","orderId":"${extract.order_id}"}`),
		Expected: Expectation{
			Status:     "200",
			BodyFields: map[string]string{"body.total": "${expected_total}"},
			Headers:    map[string]string{"X-Request-Id": "${req_id}"},
		},
	}

	names := StepPlaceholderNames(step)
	assert.Equal(t, []string{
		"base",
		"extract.order_id",
		"env.TOKEN",
		"env.COUPON",
		"expected_total",
		"req_id",
	}, names)

	t.Run("empty step", func(t *testing.T) {
		assert.Empty(t, StepPlaceholderNames(&Step{Endpoint: "/health"}))
	})
}
