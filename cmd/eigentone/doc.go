// Command eigentone demonstrates that the invariants of a symmetric
// tensor survive orthogonal rotation, then makes the result audible and
// visible: the eigenvalue spectrum is mapped into an audible band and
// synthesized as a phase-locked stereo tone, and a toy phase-cube figure
// of the frequency/phase relationship is rendered alongside.
//
// Usage:
//
//	eigentone
//
// Configuration comes from environment variables, all optional:
//
//	EIGENTONE_SEED         random seed (default 1337)
//	EIGENTONE_DIM          tensor dimension (default 3)
//	EIGENTONE_SAMPLE_RATE  audio sample rate in Hz (default 48000)
//	EIGENTONE_DURATION     audio duration in seconds (default 2.0)
//	EIGENTONE_FMIN         lower edge of the audible band (default 220)
//	EIGENTONE_FMAX         upper edge of the audible band (default 880)
//	EIGENTONE_OUTDIR       output directory (default "figures")
//
// The run prints an invariance report and writes tensor_demo.wav and
// phase_cube.png into the output directory.
package main
