//go:build headless

package keyboard

import "github.com/zayn-spectrum/zxemu/internal/diag"

// noopHost is the headless stand-in for TerminalHost: no stdin exists to
// read in a toolchain-less or CI build, so the matrix simply stays however
// the test or embedder driving it directly left it.
type noopHost struct{}

// NewHost creates the headless no-op Host. matrix and log are accepted
// for API symmetry with the terminal-backed build and otherwise ignored.
func NewHost(matrix *Matrix, log *diag.Logger) Host { return &noopHost{} }

func (noopHost) Start() {}
func (noopHost) Stop()  {}
