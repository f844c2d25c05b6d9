package domain

import "go.trai.ch/zerr"

var (
	// ErrParagraphNotFound is returned when no paragraph of the control document carries the requested package.
	ErrParagraphNotFound = zerr.New("paragraph not found")

	// ErrMissingField is returned when a required field is absent from the selected paragraph.
	ErrMissingField = zerr.New("missing field")

	// ErrVersionNotFound is returned when a dependency cannot be resolved to a candidate version under any lookup key.
	ErrVersionNotFound = zerr.New("candidate version not found")

	// ErrInvalidVersion is returned when a package cache reports a version that is not a valid Debian version.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidPolicy is returned when an unknown pinning policy is requested.
	ErrInvalidPolicy = zerr.New("invalid pinning policy")

	// ErrUnknownResolver is returned when an unknown resolver kind is configured.
	ErrUnknownResolver = zerr.New("unknown resolver")

	// ErrInvalidConfig is returned when the configuration is inconsistent.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrInvalidSnapshot is returned when a pin snapshot cannot be used.
	ErrInvalidSnapshot = zerr.New("invalid snapshot")

	// ErrAptCacheFailed is returned when apt-cache cannot be executed or exits with an error.
	ErrAptCacheFailed = zerr.New("apt-cache failed")
)
