package backend

// BuildArgs exposes the command-line assembly for tests.
var BuildArgs = buildArgs
