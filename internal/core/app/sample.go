package app

import (
	_ "embed"
)

// SampleOrigin labels results computed from the embedded sample.
const SampleOrigin = "<sample>"

// SampleSource is the TypeScript snippet analyzed when no file is given.
//
//go:embed sample.ts
var SampleSource string
