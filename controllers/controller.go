package controllers

import (
	"fmt"
	"time"

	"storefront/config"
	"storefront/storage"
	"storefront/utils"
)

// Version reported by the status endpoint.
const Version = "1.0.0"

var (
	store        storage.Store
	cfg          *config.Config
	loginLimiter *utils.LoginLimiter
	startTime    time.Time

	// The admin password is hashed once at startup; the login path only ever
	// sees the hash.
	adminPasswordHash string
)

// Init wires the controllers to their storage backend and configuration.
// Must be called before the router serves traffic.
func Init(s storage.Store, c *config.Config) error {
	hash, err := utils.HashPassword(c.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %v", err)
	}

	store = s
	cfg = c
	adminPasswordHash = hash
	loginLimiter = utils.NewLoginLimiter(utils.MaxLoginAttempts, utils.LoginLockoutWindow)
	startTime = time.Now()
	return nil
}
