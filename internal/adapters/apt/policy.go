// Package apt implements package version resolvers backed by the apt package cache.
package apt

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/metapin/internal/core/domain"
	"go.trai.ch/zerr"
	"pault.ag/go/debian/version"
)

// noCandidate is what apt-cache prints when a package has no installable version.
const noCandidate = "(none)"

// CommandRunner runs a command and returns its stdout.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// runCommand runs the command with the C locale so field labels are not translated.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	return cmd.Output()
}

// PolicyResolver implements ports.VersionResolver by querying `apt-cache policy`.
type PolicyResolver struct {
	run CommandRunner
}

// NewPolicyResolver creates a resolver that executes apt-cache.
func NewPolicyResolver() *PolicyResolver {
	return NewPolicyResolverWithRunner(runCommand)
}

// NewPolicyResolverWithRunner creates a resolver using a custom command runner.
func NewPolicyResolverWithRunner(run CommandRunner) *PolicyResolver {
	return &PolicyResolver{run: run}
}

// Candidate returns the candidate version apt would install for key.
func (r *PolicyResolver) Candidate(ctx context.Context, key string) (string, bool, error) {
	output, err := r.run(ctx, "apt-cache", "policy", key)
	if err != nil {
		aptErr := zerr.Wrap(errors.Join(domain.ErrAptCacheFailed, err), "failed to query apt-cache policy")
		aptErr = zerr.With(aptErr, "key", key)

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			aptErr = zerr.With(aptErr, "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", false, aptErr
	}

	return parsePolicyOutput(output, key)
}

// parsePolicyOutput extracts the Candidate line from apt-cache policy output.
// apt-cache prints nothing on stdout for unknown packages.
func parsePolicyOutput(output []byte, key string) (string, bool, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		candidate, ok := strings.CutPrefix(line, "Candidate:")
		if !ok {
			continue
		}

		candidate = strings.TrimSpace(candidate)
		if candidate == "" || candidate == noCandidate {
			return "", false, nil
		}
		if _, err := version.Parse(candidate); err != nil {
			verErr := zerr.Wrap(errors.Join(domain.ErrInvalidVersion, err), "apt-cache reported an invalid candidate")
			verErr = zerr.With(verErr, "key", key)
			return "", false, zerr.With(verErr, "candidate", candidate)
		}
		return candidate, true, nil
	}
	if err := scanner.Err(); err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to read apt-cache output"), "key", key)
	}
	return "", false, nil
}
