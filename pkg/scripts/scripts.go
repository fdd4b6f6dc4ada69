// Package scripts provides the embedded font retrieval helper script.
//
// The script is embedded directly into the binary using go:embed, making it
// available without external dependencies. It is an opaque static asset:
// fontdeck only exposes it for download and never executes, validates, or
// parses it. Enumerating installed fonts is the job of the host system the
// script runs on.
package scripts

import _ "embed"

// ListFontsPS1 is a PowerShell helper that prints the font families
// installed on a Windows machine, one per line, ready to paste into
// fontdeck.

//go:embed list-fonts.ps1
var listFontsPS1 []byte

// FileName is the fixed filename the helper script is saved under.
const FileName = "list-fonts.ps1"

// UnixCommand is the one-line shell command for enumerating fonts on
// systems with fontconfig (Linux, macOS with fc-list installed). It is
// reference text shown to the user, never run by fontdeck.
const UnixCommand = `fc-list --format "%{family[0]}\n" | sort -u`

// ListFontsPS1 returns the helper script bytes. The content is identical on
// every call.
func ListFontsPS1() []byte {
	return listFontsPS1
}
