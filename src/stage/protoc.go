package stage

import (
	"fmt"
	"runtime"
)

// ProtocDescriptor locates the protoc release archive for one CPU
// architecture.
type ProtocDescriptor struct {
	Arch     string // uname -m style identifier
	Platform string // release asset platform suffix
}

// URL returns the download location for the given protoc version pin.
func (d ProtocDescriptor) URL(version string) string {
	return fmt.Sprintf(
		"https://github.com/protocolbuffers/protobuf/releases/download/v%s/protoc-%s-%s.zip",
		version, version, d.Platform)
}

// protocPlatforms is the discrete installer mapping. Only architectures
// listed here can build the toolchain stage; anything else fails hard.
var protocPlatforms = map[string]string{
	"x86_64": "linux-x86_64",
	"s390x":  "linux-s390_64",
}

// ProtocFor resolves the download descriptor for an architecture
// identifier, failing with UnsupportedArchitectureError when unmapped.
func ProtocFor(arch string) (ProtocDescriptor, error) {
	platform, ok := protocPlatforms[arch]
	if !ok {
		return ProtocDescriptor{}, &UnsupportedArchitectureError{Arch: arch}
	}
	return ProtocDescriptor{Arch: arch, Platform: platform}, nil
}

// HostArch maps the Go runtime architecture to the uname -m identifier
// used by the installer mapping.
func HostArch() (string, error) {
	switch runtime.GOARCH {
	case "amd64":
		return "x86_64", nil
	case "s390x":
		return "s390x", nil
	}
	return "", &UnsupportedArchitectureError{Arch: runtime.GOARCH}
}
