package stage

import (
	"fmt"

	"github.com/sofmeright/stagehand/src/config"
)

// Fixed paths and identities inside the pipeline. The artifact path is
// exact on both sides of the stage boundary.
const (
	buildRoot  = "/usr/src/app"
	installDir = "/usr/local/bin"
	runtimeUID = 2000
)

// New declares the three-stage pipeline for the given build
// configuration, compiled binary name, and CPU architecture. The
// architecture must have an installer mapping; anything unmapped fails
// here, before any build is attempted.
func New(cfg config.BuildConfig, binary, arch string) (*Pipeline, error) {
	protoc, err := ProtocFor(arch)
	if err != nil {
		return nil, err
	}

	artifact := fmt.Sprintf("%s/target/release/%s", buildRoot, binary)
	installed := fmt.Sprintf("%s/%s", installDir, binary)

	p := &Pipeline{
		GlobalArgs: []Arg{
			{Name: "RUST_TAG", Default: cfg.RustTag},
			{Name: "PROTOC_VERSION", Default: cfg.ProtocVersion},
			{Name: "BASE_IMAGE", Default: cfg.BaseImage},
			{Name: "BASE_IMAGE_TAG", Default: cfg.BaseImageTag},
		},
		Stages: []Stage{
			{
				Name: "toolchain",
				Doc:  "compiler plus the protoc code generator, rarely changes",
				From: "rust:${RUST_TAG}",
				Args: []string{"PROTOC_VERSION"},
				Env:  map[string]string{"PROTOC": installDir + "/protoc"},
				Runs: []string{
					fmt.Sprintf(
						"curl -fsSL -o /tmp/protoc.zip %s && unzip -o /tmp/protoc.zip -d /usr/local bin/protoc 'include/*' && rm /tmp/protoc.zip",
						protoc.URL("${PROTOC_VERSION}")),
				},
				Outputs: []string{installDir + "/protoc"},
			},
			{
				Name:    "build",
				Doc:     "source compilation, changes on every commit",
				From:    "toolchain",
				Workdir: buildRoot,
				Copies:  []Copy{{Src: ".", Dst: "."}},
				Runs: []string{
					fmt.Sprintf("cargo build --release --bin %s", binary),
				},
				Outputs: []string{artifact},
			},
			{
				Name:   "runtime",
				Doc:    "minimal runtime image, non-root",
				From:   "${BASE_IMAGE}:${BASE_IMAGE_TAG}",
				Copies: []Copy{{FromStage: "build", Src: artifact, Dst: installed}},
				Runs: []string{
					fmt.Sprintf("microdnf install -y shadow-utils && useradd -u %d -g 0 app && microdnf clean all", runtimeUID),
				},
				User:   fmt.Sprintf("%d", runtimeUID),
				Env:    map[string]string{cfg.Port.Name: fmt.Sprintf("%d", cfg.Port.Value)},
				Expose: cfg.Port.Value,
				Cmd:    []string{installed},
			},
		},
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
