package version

import "runtime/debug"

// Version is the current litecoind client version.
var Version = "0.0.0-dev"

// UserAgent is the value of the User-Agent header sent with each HTTP request.
var UserAgent = "dogmatiq-litecoind/" + Version

func init() {
	// Look through the binary's dependencies to find the current version.
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == "github.com/dogmatiq/litecoind" {
				Version = dep.Version
				UserAgent = "dogmatiq-litecoind/" + Version
			}
		}
	}
}
