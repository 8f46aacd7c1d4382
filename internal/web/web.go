// Package web embeds the interactive analysis page served at the root route.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
