package config

type Config struct {
	System struct {
		IsProd                bool   // 是否为生产环境
		Listen                string // 监听地址
		DBConnectionString    string // Postgres 数据库的连接字符串
		RedisConnectionString string // Redis 数据库的连接字符串
	}
	Security struct {
		SignatureSecretKey string // 签名密钥，用于签发会话 token ，更新会导致旧有会话失效
	}
	Fetcher struct {
		CurseForgeAPIKey string // CurseForge API 的访问密钥，插件元数据抓取时使用
	}
}
