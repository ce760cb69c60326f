package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	csvscreenVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	for _, name := range []string{"obfuscate", "verify"} {
		app := NewAppBuild(name, "cmd/"+name, csvscreenVersion)
		app.Build(func(gb *GoBuild) {
			gb.StripDebugSymbols()
		})
		app.Variant("windows", "amd64")
		app.Variant("linux", "amd64")
		app.Variant("linux", "arm64")
		app.Variant("darwin", "amd64")
		app.Variant("darwin", "arm64")
		b.ImportApp(app)
	}

	b.Execute()
}
