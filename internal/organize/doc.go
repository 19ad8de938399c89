// Package organize reconciles files with their resolved creation dates:
// in-place timestamp updates, or moves into year/month subdirectories with
// collision handling.
package organize
