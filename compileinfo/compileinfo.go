package compileinfo

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// CompileInfo describes the binary that is running: which command it is, the
// module version, and the VCS state it was built from.
type CompileInfo struct {
	Package    string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	if c.Package == "" {
		return "Build information is unavailable for this binary."
	}

	mod := ""
	if c.Modified {
		mod = " Files in the repo were modified after that commit."
	}

	commit := "an unknown commit"
	if c.Commit != "" {
		commit = fmt.Sprintf("commit %s (%s)", c.Commit, c.CommitTime)
	}

	return fmt.Sprintf("%s %s, built with %s at %s.%s", c.Package, c.Version, c.GoVersion, commit, mod)
}

// Get reads the build information embedded by the Go toolchain.
func Get() CompileInfo {
	z, ok := debug.ReadBuildInfo()
	if !ok {
		return CompileInfo{}
	}

	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		GoVersion: z.GoVersion,
		Package:   z.Path,
		Version:   z.Main.Version,
	}

	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

// Fprint writes the build information of the running binary to w.
func Fprint(w io.Writer) {
	fmt.Fprintf(w, "%s\n", Get())
}

func PrintToStdErr() {
	Fprint(os.Stderr)
}
