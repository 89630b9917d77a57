package memcache_fx

import (
	"go.uber.org/fx"

	mem "flock/pkg/memcache"
)

var Module = fx.Provide(provideProgressStore)

func provideProgressStore() mem.ProgressStore {
	return mem.NewProgressStore()
}
