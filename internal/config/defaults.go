package config

// Default returns the baseline configuration before file and environment
// overrides are applied.
func Default() Config {
	return Config{
		Paths: Paths{
			SourceCSV: "data/source/photographers.csv",
			DataDir:   "data",
			AssetDir:  "public/assets/vr-covers",
			CacheDir:  "~/.cache/tourpipe",
		},
		Enrich: Enrich{
			Concurrency:    4,
			TimeoutSeconds: 15,
			UserAgent:      "tourpipe/0.1 (+https://github.com/realsee-developer/discover)",
			DownloadCovers: true,
		},
		Carousel: Carousel{
			ImageDir:   "public/assets/carousel",
			Extensions: []string{".jpg", ".jpeg", ".png", ".webp"},
		},
		Logging: Logging{
			Level:  "info",
			Format: "console",
		},
	}
}
