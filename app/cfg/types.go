package cfg

type Cfg struct {
	// Application configuration
	CategoriesFile string
	Port           string
	WorkerCount    int
	CacheTTL       int // seconds
	FetchTimeout   int // seconds

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
