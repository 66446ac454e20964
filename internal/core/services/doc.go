// Package services implements the driving port interfaces.
// Services contain the core business logic: relevance matching,
// snippet extraction, course content scanning and result aggregation.
//
// Services are pure Go. All I/O goes through driven ports.
package services
