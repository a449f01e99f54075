package uitxt

import "errors"

// Returned (wrapped) by [NewCatalog] when a configured font file
// doesn't exist. The underlying fs.ErrNotExist is wrapped too.
var ErrMissingAsset = errors.New("missing font asset")

// Returned (wrapped) by [NewCatalog] when a configured font file
// can't be read or parsed.
var ErrInvalidAsset = errors.New("invalid font asset")

// Returned (wrapped) by [Config.Validate] and the config loading
// functions when the configuration can't be used.
var ErrInvalidConfig = errors.New("invalid uitxt config")
