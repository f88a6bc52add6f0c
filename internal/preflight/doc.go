// Package preflight provides readiness checks for the external transcoder
// and the filesystem paths shrinktunes depends on.
//
// The CLI "check" command renders each Result as a status line, and the
// convert command runs the ffmpeg check before any batch work so a missing
// binary surfaces as an install hint instead of a mid-run failure.
package preflight
