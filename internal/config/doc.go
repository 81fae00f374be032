// Package config loads multicaret settings from TOML.
//
// Settings are resolved in three layers, later layers overriding earlier ones:
//
//  1. The embedded default.toml.
//  2. The user file, if it exists.
//  3. MULTICARET_* environment variables, e.g. MULTICARET_FIELD_MAX_LENGTH=80
//     or MULTICARET_LOG_LEVEL=debug.
//
// Layers are merged as maps with DeepMerge and the result is decoded into a
// Config. Unknown keys in the user file are reported as a *ParseError with
// the offending position.
//
// A Watcher reloads the user file when it changes on disk.
package config
