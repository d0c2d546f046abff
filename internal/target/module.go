package target

import (
	"go.uber.org/fx"
)

var Module = fx.Provide(FromConfig)
