package version

import "runtime/debug"

var (
	buildinfo   *debug.BuildInfo
	buildinfoOk bool
)

func init() {
	buildinfo, buildinfoOk = debug.ReadBuildInfo()
}

const readBuildInfoFailed = "Unknown (Error: ReadBuildInfo() failed)"

func GoVersion() string {
	if buildinfoOk {
		return buildinfo.GoVersion
	}
	return readBuildInfoFailed
}

func BuildDeps() []*debug.Module {
	if buildinfoOk {
		return buildinfo.Deps
	}
	return []*debug.Module{}
}

func BuildSettings() []debug.BuildSetting {
	if buildinfoOk {
		return buildinfo.Settings
	}
	return []debug.BuildSetting{}
}
