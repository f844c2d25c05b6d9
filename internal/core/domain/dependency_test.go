package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/metapin/internal/core/domain"
)

func TestParseEntries(t *testing.T) {
	tests := []struct {
		name    string
		depends string
		want    []domain.Entry
	}{
		{
			name:    "multi-line with placeholder",
			depends: "foo,\n bar,\n $variable",
			want: []domain.Entry{
				{Raw: "foo", Name: "foo"},
				{Raw: "bar", Name: "bar"},
				{Raw: "$variable", Placeholder: true},
			},
		},
		{
			name:    "substvar with braces",
			depends: "${misc:Depends},\n nymea-plugin-consolinno",
			want: []domain.Entry{
				{Raw: "${misc:Depends}", Placeholder: true},
				{Raw: "nymea-plugin-consolinno", Name: "nymea-plugin-consolinno"},
			},
		},
		{
			name:    "only one trailing comma is removed",
			depends: "foo,,",
			want:    []domain.Entry{{Raw: "foo,", Name: "foo,"}},
		},
		{
			name:    "blank lines are skipped",
			depends: "\n foo,\n\n   \n bar:amd64",
			want: []domain.Entry{
				{Raw: "foo", Name: "foo"},
				{Raw: "bar:amd64", Name: "bar:amd64"},
			},
		},
		{
			name:    "empty",
			depends: "",
			want:    []domain.Entry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseEntries(tt.depends))
		})
	}
}

func TestPin_Render(t *testing.T) {
	pkg := domain.Pin{Entry: domain.Entry{Raw: "foo", Name: "foo"}, Key: "foo", Version: "1.2-1"}
	assert.Equal(t, "foo (= 1.2-1)", pkg.Render("="))
	assert.Equal(t, "foo (>= 1.2-1)", pkg.Render(">="))

	placeholder := domain.Pin{Entry: domain.Entry{Raw: "${shlibs:Depends}", Placeholder: true}}
	assert.Equal(t, "${shlibs:Depends}", placeholder.Render("="))
}

func TestNewSnapshot_SkipsPlaceholders(t *testing.T) {
	policy, err := domain.PolicyByName(domain.PolicyMinimum)
	assert.NoError(t, err)

	snap := domain.NewSnapshot(policy, "arm64", "abc", []domain.Pin{
		{Entry: domain.Entry{Raw: "foo", Name: "foo"}, Key: "foo:arm64", Version: "1.0"},
		{Entry: domain.Entry{Raw: "$v", Placeholder: true}},
		{Entry: domain.Entry{Raw: "bar", Name: "bar"}, Key: "bar:all", Version: "2.0"},
	})

	assert.Equal(t, domain.SnapshotVersion, snap.Version)
	assert.Equal(t, "minimum", snap.Policy)
	assert.Equal(t, map[string]string{"foo:arm64": "1.0", "bar:all": "2.0"}, snap.Packages)

	v, ok := snap.Lookup("bar:all")
	assert.True(t, ok)
	assert.Equal(t, "2.0", v)
}

func TestFingerprint(t *testing.T) {
	a := domain.ParseEntries("foo,\n bar,\n $var")
	b := domain.ParseEntries("foo,\n\n   bar ,\n$var,")
	c := domain.ParseEntries("foo,\n baz,\n $var")

	assert.Equal(t, domain.Fingerprint(a), domain.Fingerprint(b), "formatting must not change the fingerprint")
	assert.NotEqual(t, domain.Fingerprint(a), domain.Fingerprint(c))
}
