package version

func IsDebug() bool {
	return Mode == "debug"
}
