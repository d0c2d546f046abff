package transport

import (
	"go.uber.org/fx"
)

// Module exports the transport module
var Module = fx.Options(
	fx.Provide(New),
)
