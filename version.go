package main

var (
	gitSHA1   string = "unknown"
	gitDirty  string = "unknown"
	buildID   string = "unknown"
	buildDate string = "unknown"
)

func CapsetGitSHA1() string {
	return gitSHA1
}

func CapsetGitDirty() string {
	return gitDirty
}

func CapsetBuildIdRaw() string {
	return buildID + buildDate + gitSHA1 + gitDirty
}
