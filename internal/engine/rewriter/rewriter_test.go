package rewriter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/metapin/internal/core/domain"
	"go.trai.ch/metapin/internal/core/ports/mocks"
	"go.trai.ch/metapin/internal/engine/rewriter"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	resolver *mocks.MockVersionResolver
	logger   *mocks.MockLogger
}

func setup(t *testing.T) (*rewriter.Rewriter, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := testMocks{
		resolver: mocks.NewMockVersionResolver(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return rewriter.New(m.resolver, m.logger), m
}

// expectCache makes the resolver answer from cache and report every other key as unknown.
func expectCache(m testMocks, cache map[string]string) {
	m.resolver.EXPECT().Candidate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) (string, bool, error) {
			v, ok := cache[key]
			return v, ok, nil
		}).AnyTimes()
}

func latestDoc() domain.Document {
	src := domain.NewParagraph()
	src.Set("Source", "consolinno-hems")
	src.Set("Maintainer", "Consolinno Energy <info@consolinno.de>")

	latest := domain.NewParagraph()
	latest.Set("Package", "consolinno-hems-latest")
	latest.Set("Architecture", "all")
	latest.Set("Depends", "foo,\nbar,\n$variable")
	latest.Set("Description", "HEMS meta-package")

	return domain.Document{src, latest}
}

func policy(t *testing.T, name string) domain.Policy {
	t.Helper()
	p, err := domain.PolicyByName(name)
	require.NoError(t, err)
	return p
}

func TestRewrite_ExactPolicy(t *testing.T) {
	rw, m := setup(t)
	expectCache(m, map[string]string{"foo": "1.2", "bar": "3.4"})
	doc := latestDoc()

	got, err := rw.Rewrite(context.Background(), doc, rewriter.Request{
		Source: "consolinno-hems-latest",
		Target: "consolinno-hems",
		Policy: policy(t, domain.PolicyExact),
	})
	require.NoError(t, err)

	p := got.Paragraph
	assert.Equal(t, []string{"Package", "Architecture", "Depends", "Description"}, p.Order)
	assert.Equal(t, "consolinno-hems", p.Values["Package"])
	assert.Equal(t, "foo (= 1.2) \n         bar (= 3.4) \n         $variable", p.Values["Depends"])
	assert.Equal(t, "all", p.Values["Architecture"])
	assert.Equal(t, "HEMS meta-package", p.Values["Description"])

	require.Len(t, got.Pins, 3)
	assert.Equal(t, "foo", got.Pins[0].Key)
	assert.True(t, got.Pins[2].Entry.Placeholder)

	// The input document is left untouched.
	assert.Equal(t, "consolinno-hems-latest", doc[1].Values["Package"])
	assert.Equal(t, "foo,\nbar,\n$variable", doc[1].Values["Depends"])
}

func TestRewrite_MinimumPolicy(t *testing.T) {
	t.Run("qualified lookup with all fallback", func(t *testing.T) {
		rw, m := setup(t)
		m.logger.EXPECT().Warn("bar:arm64 not found, using bar:all").Times(1)
		expectCache(m, map[string]string{"foo:arm64": "1.2", "bar:all": "3.4", "foo": "9.9"})

		got, err := rw.Rewrite(context.Background(), latestDoc(), rewriter.Request{
			Source:       "consolinno-hems-latest",
			Target:       "consolinno-hems",
			Architecture: "arm64",
			Policy:       policy(t, domain.PolicyMinimum),
		})
		require.NoError(t, err)

		assert.Equal(t, "foo (>= 1.2),\n         bar (>= 3.4),\n         $variable", got.Paragraph.Values["Depends"])
		assert.Equal(t, "foo:arm64", got.Pins[0].Key)
		assert.Equal(t, "bar:all", got.Pins[1].Key)
	})

	t.Run("unqualified without architecture", func(t *testing.T) {
		rw, m := setup(t)
		expectCache(m, map[string]string{"foo": "1.0", "bar": "2.0", "bar:all": "3.0"})

		got, err := rw.Rewrite(context.Background(), latestDoc(), rewriter.Request{
			Source: "consolinno-hems-latest",
			Target: "consolinno-hems",
			Policy: policy(t, domain.PolicyMinimum),
		})
		require.NoError(t, err)
		assert.Equal(t, "foo (>= 1.0),\n         bar (>= 2.0),\n         $variable", got.Paragraph.Values["Depends"])
	})

	t.Run("missing under both keys", func(t *testing.T) {
		rw, m := setup(t)
		expectCache(m, map[string]string{"foo:arm64": "1.2", "bar": "3.4"})

		got, err := rw.Rewrite(context.Background(), latestDoc(), rewriter.Request{
			Source:       "consolinno-hems-latest",
			Target:       "consolinno-hems",
			Architecture: "arm64",
			Policy:       policy(t, domain.PolicyMinimum),
		})
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, domain.ErrVersionNotFound))
	})
}

func TestRewrite_ExactPolicyIgnoresArchitecture(t *testing.T) {
	rw, m := setup(t)
	m.logger.EXPECT().Warn("architecture arm64 is ignored by the exact policy").Times(1)
	expectCache(m, map[string]string{"foo": "1.2", "bar": "3.4"})

	got, err := rw.Rewrite(context.Background(), latestDoc(), rewriter.Request{
		Source:       "consolinno-hems-latest",
		Target:       "consolinno-hems",
		Architecture: "arm64",
		Policy:       policy(t, domain.PolicyExact),
	})
	require.NoError(t, err)
	assert.Equal(t, "foo (= 1.2) \n         bar (= 3.4) \n         $variable", got.Paragraph.Values["Depends"])
}

func TestRewrite_SourceNotFound(t *testing.T) {
	rw, _ := setup(t)

	got, err := rw.Rewrite(context.Background(), latestDoc(), rewriter.Request{
		Source: "consolinno-hems-nightly",
		Target: "consolinno-hems",
		Policy: policy(t, domain.PolicyExact),
	})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domain.ErrParagraphNotFound))
}

func TestRewrite_MissingDepends(t *testing.T) {
	rw, _ := setup(t)
	p := domain.NewParagraph()
	p.Set("Package", "consolinno-hems-latest")

	_, err := rw.Rewrite(context.Background(), domain.Document{p}, rewriter.Request{
		Source: "consolinno-hems-latest",
		Target: "consolinno-hems",
		Policy: policy(t, domain.PolicyExact),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingField))
}

func TestRewrite_LookupError(t *testing.T) {
	rw, m := setup(t)
	expectCache(m, map[string]string{"foo": "1.2"})

	got, err := rw.Rewrite(context.Background(), latestDoc(), rewriter.Request{
		Source: "consolinno-hems-latest",
		Target: "consolinno-hems",
		Policy: policy(t, domain.PolicyExact),
	})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domain.ErrVersionNotFound))
	assert.Contains(t, err.Error(), "dependency has no candidate version")
}

func TestRewrite_ResolverFailure(t *testing.T) {
	rw, m := setup(t)
	failure := errors.New("apt-cache: permission denied")
	m.resolver.EXPECT().Candidate(gomock.Any(), gomock.Any()).Return("", false, failure).AnyTimes()

	_, err := rw.Rewrite(context.Background(), latestDoc(), rewriter.Request{
		Source: "consolinno-hems-latest",
		Target: "consolinno-hems",
		Policy: policy(t, domain.PolicyExact),
	})
	require.ErrorIs(t, err, failure)
	assert.False(t, errors.Is(err, domain.ErrVersionNotFound))
}

func TestRewrite_PreservesOrderWithManyEntries(t *testing.T) {
	rw, m := setup(t)
	cache := map[string]string{}
	depends := ""
	want := ""
	for i := range 40 {
		name := "pkg" + string(rune('a'+i%26)) + string(rune('a'+i/26))
		cache[name] = "1." + name
		depends += name + ",\n"
		if want != "" {
			want += " \n         "
		}
		want += name + " (= 1." + name + ")"
	}
	expectCache(m, cache)

	p := domain.NewParagraph()
	p.Set("Package", "consolinno-hems-latest")
	p.Set("Depends", depends)

	got, err := rw.Rewrite(context.Background(), domain.Document{p}, rewriter.Request{
		Source: "consolinno-hems-latest",
		Target: "consolinno-hems",
		Policy: policy(t, domain.PolicyExact),
	})
	require.NoError(t, err)
	assert.Equal(t, want, got.Paragraph.Values["Depends"])
}
