// Package gamedata holds the item definitions items are built from, embedded
// at build time, plus color helpers for rendering them.
package gamedata

import "embed"

//go:embed *.json
var dataFS embed.FS
