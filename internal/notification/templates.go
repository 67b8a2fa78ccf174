package notification

import (
	"embed"
	"io/fs"
)

// submissionTemplate names the template set in templates/.
const submissionTemplate = "submission"

//go:embed templates/*
var embedded embed.FS

// Templates returns the built-in email templates.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err) // unreachable: directory is embedded at compile time
	}
	return sub
}
