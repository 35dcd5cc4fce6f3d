// Package ffmpeg is the encoder launcher: it runs a compiled argument
// vector as a child process, classifies stderr into named error families,
// and exposes a RetryPolicy seam for the job driver to consult after a
// failure.
package ffmpeg
