package runner

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticResolver struct {
	addrs map[string][]net.IPAddr
}

func (r *staticResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	return r.addrs[host], nil
}

func TestTargetGuardLiteralAddresses(t *testing.T) {
	guard := NewTargetGuard(false)

	blocked := []string{
		"http://127.0.0.1/users",
		"http://127.0.0.1:8080/users",
		"http://10.0.0.5/api",
		"http://172.16.3.4/api",
		"http://192.168.1.20:3000/api",
		"http://169.254.169.254/latest/meta-data",
		"http://0.0.0.0/",
		"http://[::1]/users",
	}
	for _, target := range blocked {
		err := guard.CheckURL(context.Background(), target)
		require.Error(t, err, "expected %s to be blocked", target)
		assert.ErrorIs(t, err, ErrBlockedTarget, target)
	}

	allowed := []string{
		"http://93.184.216.34/users",
		"https://8.8.8.8/api",
	}
	for _, target := range allowed {
		assert.NoError(t, guard.CheckURL(context.Background(), target), target)
	}
}

func TestTargetGuardAllowInternal(t *testing.T) {
	guard := NewTargetGuard(true)
	assert.NoError(t, guard.CheckURL(context.Background(), "http://127.0.0.1:8080/users"))
	assert.NoError(t, guard.CheckURL(context.Background(), "http://192.168.1.1/api"))
}

func TestTargetGuardResolvesHostnames(t *testing.T) {
	guard := NewTargetGuard(false)
	guard.resolver = &staticResolver{addrs: map[string][]net.IPAddr{
		"internal.test": {{IP: net.ParseIP("10.1.2.3")}},
		"public.test":   {{IP: net.ParseIP("93.184.216.34")}},
		// Rebinding shape: one public, one private address.
		"mixed.test": {
			{IP: net.ParseIP("93.184.216.34")},
			{IP: net.ParseIP("127.0.0.1")},
		},
	}}

	err := guard.CheckURL(context.Background(), "http://internal.test/users")
	require.ErrorIs(t, err, ErrBlockedTarget)

	assert.NoError(t, guard.CheckURL(context.Background(), "http://public.test/users"))

	err = guard.CheckURL(context.Background(), "http://mixed.test/users")
	require.ErrorIs(t, err, ErrBlockedTarget)
}

func TestTargetGuardRejectsHostlessURL(t *testing.T) {
	guard := NewTargetGuard(false)
	err := guard.CheckURL(context.Background(), "/relative/only")
	require.ErrorIs(t, err, ErrBlockedTarget)
}
