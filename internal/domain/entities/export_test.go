package entities

// ExpandPath exports expandPath for testing.
var ExpandPath = expandPath //nolint:gochecknoglobals // test export

// Validate exports validate for testing.
var Validate = validate //nolint:gochecknoglobals // test export
