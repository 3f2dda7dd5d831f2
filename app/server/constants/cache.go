package constants

import "time"

const (
	CacheKeyPluginListPublic = "vulcano:plugins:public"
	CacheKeyServerInfo       = "vulcano:server:info"
	CacheKeyPluginPreview    = "vulcano:plugin:preview:%s" // 以插件 URL 作为键的一部分
	CacheKeySessionRevoked   = "vulcano:session:revoked:%s"
)

const (
	CacheExpirePluginListPublic = 1 * time.Minute
	CacheExpireServerInfo       = 5 * time.Minute
	CacheExpirePluginPreview    = 1 * time.Hour
)
