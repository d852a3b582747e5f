package config

// Rate limit configuration, tokens are refilled every minute
type RateLimitConfig struct {
	Rate  int // Tokens added per minute
	Burst int // Bucket capacity
}

// APIRateLimit applies to every /api/v1 route
var APIRateLimit = RateLimitConfig{
	Rate:  6000,
	Burst: 600,
}

// ProxyRateLimit applies to the spreadsheet and store lookup proxies
var ProxyRateLimit = RateLimitConfig{
	Rate:  600,
	Burst: 120,
}

// ExportRateLimit applies to the image export endpoints, which decode and rasterize images
var ExportRateLimit = RateLimitConfig{
	Rate:  120,
	Burst: 30,
}
