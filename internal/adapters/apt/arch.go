package apt

import "runtime"

// debianArch maps Go architecture names to Debian architecture names where they differ.
var debianArch = map[string]string{
	"386":      "i386",
	"arm":      "armhf",
	"mips64le": "mips64el",
	"mipsle":   "mipsel",
	"ppc64le":  "ppc64el",
}

// HostArchitecture returns the Debian architecture of the running system.
func HostArchitecture() string {
	return DebianArch(runtime.GOARCH)
}

// DebianArch converts a Go architecture name (GOARCH) to its Debian counterpart.
func DebianArch(goarch string) string {
	if arch, ok := debianArch[goarch]; ok {
		return arch
	}
	return goarch
}
