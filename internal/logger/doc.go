// Package logger wraps zap with a console encoder writing to stderr and
// context helpers (ToContext/FromContext/WithName/WithKV), so every
// function that receives a context logs through the scoped logger.
package logger
