// Package ffmpeg wraps the external ffmpeg binary behind a narrow client and
// parses its formats table into a queryable catalog.
//
// The client exposes exactly the two invocation shapes shrinktunes needs: the
// capability query (-formats) and a single-file conversion. Command execution
// sits behind the Executor interface so the parser and the conversion driver
// stay unit-testable without ffmpeg installed.
package ffmpeg
