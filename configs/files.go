package configs

import _ "embed"

// Defaults compiled into the binary, used when the YAML files are not on disk
// (tests, containers started outside the project root).

//go:embed application.yml
var ApplicationYAML []byte

//go:embed messages.yml
var MessagesYAML []byte
