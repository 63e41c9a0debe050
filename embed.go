package embedded

import _ "embed"

//go:embed "configs/default.toml"
var DefaultConfig []byte
