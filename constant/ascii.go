package constant

import _ "embed"

// AsciiArtLogo is the banner printed at the top of the root help.
//
//go:embed ascii.txt
var AsciiArtLogo string
