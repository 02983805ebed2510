// Package logger wraps zerolog with component tagging and a small,
// stable field vocabulary. Libraries default to the Nop logger; callers
// opt in to output by constructing one with New or NewDefault.
package logger
