package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/metapin/internal/core/domain"
)

func TestPolicyByName(t *testing.T) {
	exact, err := domain.PolicyByName("exact")
	require.NoError(t, err)
	assert.Equal(t, "=", exact.Operator)
	assert.Equal(t, " \n         ", exact.Separator)

	minimum, err := domain.PolicyByName("minimum")
	require.NoError(t, err)
	assert.Equal(t, ">=", minimum.Operator)
	assert.Equal(t, ",\n         ", minimum.Separator)

	_, err = domain.PolicyByName("latest")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidPolicy))
}

func TestPolicy_LookupKeys(t *testing.T) {
	exact, _ := domain.PolicyByName(domain.PolicyExact)
	minimum, _ := domain.PolicyByName(domain.PolicyMinimum)
	foo := domain.Entry{Raw: "foo", Name: "foo"}
	qualified := domain.Entry{Raw: "foo:armhf", Name: "foo:armhf"}

	tests := []struct {
		name   string
		policy domain.Policy
		entry  domain.Entry
		arch   string
		want   []string
	}{
		{"exact ignores architecture", exact, foo, "arm64", []string{"foo"}},
		{"exact without architecture", exact, foo, "", []string{"foo"}},
		{"minimum qualifies and falls back", minimum, foo, "arm64", []string{"foo:arm64", "foo:all"}},
		{"minimum without architecture", minimum, foo, "", []string{"foo"}},
		{"minimum with arch all has no duplicate fallback", minimum, foo, "all", []string{"foo:all"}},
		{"already qualified entry is used as written", minimum, qualified, "arm64", []string{"foo:armhf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.LookupKeys(tt.entry, tt.arch))
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		require.NoError(t, domain.DefaultConfig().Validate())
	})

	t.Run("unknown resolver", func(t *testing.T) {
		cfg := domain.DefaultConfig()
		cfg.Resolver = "yum"
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUnknownResolver))
	})

	t.Run("snapshot resolver needs a path", func(t *testing.T) {
		cfg := domain.DefaultConfig()
		cfg.Resolver = domain.ResolverSnapshot
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	})

	t.Run("unknown policy", func(t *testing.T) {
		cfg := domain.DefaultConfig()
		cfg.Policy = "pinned"
		require.Error(t, cfg.Validate())
	})
}
