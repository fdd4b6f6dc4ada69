// Package pkg provides the core libraries for fontdeck font previewing.
//
// # Overview
//
// Fontdeck renders a sample text in every font from a list the user pastes
// in, so fonts installed on a machine can be compared side by side. The pkg
// directory is organized into:
//
//  1. [fontlist] - Parsing and merging of font name lists
//  2. [preview] - The preview screen state machine
//  3. [clipboard] - System clipboard access behind a test-friendly interface
//  4. [scripts] - The embedded font retrieval helper script
//  5. [config] - The optional TOML configuration file
//  6. [errors] - Structured error codes shared across the CLI
//  7. [buildinfo] - Build-time version information
//
// # Data Flow
//
// The typical flow through fontdeck:
//
//	pasted font list
//	        ↓
//	   [fontlist] (split, trim, drop empties)
//	        ↓
//	   [preview] (union with built-ins, dedupe, sort; gate on explicit generate)
//	        ↓
//	   preview cards in the terminal UI
//
// # Quick Start
//
// Drive the controller directly:
//
//	ctrl := preview.New(clipboard.NewSystem())
//	ctrl.SetRawFontList("Inter\nFira Code, Iosevka")
//	ctrl.RequestPreviews()
//	for _, name := range ctrl.AvailableFonts() {
//	    fmt.Println(name)
//	}
//
// [fontlist]: https://pkg.go.dev/github.com/matzehuels/fontdeck/pkg/fontlist
// [preview]: https://pkg.go.dev/github.com/matzehuels/fontdeck/pkg/preview
// [clipboard]: https://pkg.go.dev/github.com/matzehuels/fontdeck/pkg/clipboard
// [scripts]: https://pkg.go.dev/github.com/matzehuels/fontdeck/pkg/scripts
// [config]: https://pkg.go.dev/github.com/matzehuels/fontdeck/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/fontdeck/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/fontdeck/pkg/buildinfo
package pkg
