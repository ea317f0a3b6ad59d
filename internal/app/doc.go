// Package app contains the core application logic. It loads a markup file,
// builds one host window per <window> fragment and hands the opened windows
// to the host runtime, decoupled from any specific entrypoint like a CLI.
package app
