// Package templates holds the embedded emission templates and the project
// scaffold copied into every generated output directory.
package templates

import "embed"

//go:embed typescript all:scaffold
var FS embed.FS

// ScaffoldRoot is the directory inside FS holding the project tree.
const ScaffoldRoot = "scaffold"
