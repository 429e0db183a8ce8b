// Package zerr defines the tagged error kinds of spec.md §7: IO, Format,
// Unsupported and Config. Call sites wrap one of these sentinels with
// fmt.Errorf("%w: ...") so callers can classify failures with errors.Is
// without parsing strings, following the teacher's plain stdlib-errors
// style (no third-party error package is used anywhere in this repo).
package zerr

import "errors"

var (
	// ErrIO covers file-open/read failures (TAP/TZX/SNA/ROM/DivIDE).
	ErrIO = errors.New("io error")
	// ErrFormat covers bad magic, truncated blocks, invalid sizes, and
	// values exceeding implementation caps.
	ErrFormat = errors.New("format error")
	// ErrUnsupported covers unknown TZX block IDs encountered at load time.
	ErrUnsupported = errors.New("unsupported")
	// ErrConfig covers CLI arguments out of range.
	ErrConfig = errors.New("config error")
)
