// tfbinpack — texture layout optimizer CLI
//
// Packs rectangular items from cut lists, DXF drawings or sprite
// directories onto the fewest, smallest canvases.
//
// Build:
//   go build -o tfbinpack ./cmd/tfbinpack

package main

import (
	"github.com/ChrisBlueStone/TFBinPacker/cmd/tfbinpack/commands"
)

func main() {
	commands.Execute()
}
