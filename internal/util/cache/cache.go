package cache_utils

import (
	"crypto/tls"
	"sync"
	"time"

	"novusfiles-backend/internal/config"

	"github.com/valkey-io/valkey-go"
)

const DefaultCacheTimeout = 3 * time.Second

var (
	once         sync.Once
	valkeyClient valkey.Client
)

// GetValkeyClient returns the shared Valkey client, or nil when no cache
// server is configured. Callers must treat a nil client as "cache disabled".
func GetValkeyClient() valkey.Client {
	once.Do(func() {
		env := config.GetEnv()
		if env.ValkeyHost == "" {
			return
		}

		options := valkey.ClientOption{
			InitAddress: []string{env.ValkeyHost + ":" + env.ValkeyPort},
			Password:    env.ValkeyPassword,
			Username:    env.ValkeyUsername,
		}

		if env.ValkeyIsSsl {
			options.TLSConfig = &tls.Config{
				ServerName: env.ValkeyHost,
			}
		}

		client, err := valkey.NewClient(options)
		if err != nil {
			panic(err)
		}

		valkeyClient = client
	})

	return valkeyClient
}
