package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

const (
	// PolicyExact pins every dependency to exactly its candidate version.
	PolicyExact = "exact"

	// PolicyMinimum requires at least the candidate version, with architecture-aware lookups.
	PolicyMinimum = "minimum"
)

// archAll is the Debian architecture of architecture-independent packages.
const archAll = "all"

// Policy describes how dependencies are looked up and constrained.
type Policy struct {
	// Name identifies the policy in configuration.
	Name string

	// Operator is the version relation written into Depends (e.g., "=" or ">=").
	Operator string

	// Separator joins rendered entries in the output Depends field.
	Separator string

	// QualifyArch makes lookups use "name:arch" when an architecture is given.
	QualifyArch bool

	// Fallback is the architecture retried when the qualified lookup misses.
	Fallback string
}

var policies = map[string]Policy{
	PolicyExact: {
		Name:      PolicyExact,
		Operator:  "=",
		Separator: " \n         ",
	},
	PolicyMinimum: {
		Name:        PolicyMinimum,
		Operator:    ">=",
		Separator:   ",\n         ",
		QualifyArch: true,
		Fallback:    archAll,
	},
}

// PolicyNames returns the names of all known policies, sorted.
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// PolicyByName returns the policy registered under name.
func PolicyByName(name string) (Policy, error) {
	p, ok := policies[name]
	if !ok {
		err := zerr.Wrap(ErrInvalidPolicy, "unsupported policy")
		err = zerr.With(err, "policy", name)
		return Policy{}, zerr.With(err, "supported", PolicyNames())
	}
	return p, nil
}

// LookupKeys returns the package cache keys to try, in order, for an entry.
func (p Policy) LookupKeys(e Entry, arch string) []string {
	if e.Qualified() || !p.QualifyArch || arch == "" {
		return []string{e.Name}
	}
	keys := []string{e.Name + ":" + arch}
	if p.Fallback != "" && p.Fallback != arch {
		keys = append(keys, e.Name+":"+p.Fallback)
	}
	return keys
}
