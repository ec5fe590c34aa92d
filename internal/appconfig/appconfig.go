// Package appconfig centralizes the pitch transposer's process-wide
// defaults: the output directory for static transpositions, the real-time
// clip duration, and the analysis worker pool size.
package appconfig

import "time"

// OutputDir is where transposed static files are written, relative to the
// working directory.
const OutputDir = "resources/outputs/"

// RealTimeClipDuration is how long each record/transpose/playback cycle
// lasts in real-time mode.
const RealTimeClipDuration = 5 * time.Second

// WorkerCount is the fan-out width used for parallel frame analysis and
// synthesis in the phase vocoder.
const WorkerCount = 4

// StopBanner is printed once before entering the real-time loop.
const StopBanner = "Stop program with C-c"
