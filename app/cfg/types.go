package cfg

type Cfg struct {
	// Content pipeline paths
	ContentDir    string
	PagesDir      string
	PublicDir     string
	BlogIndexFile string
	SiteConfig    string

	// Site overrides
	BaseUrl string

	// Feature toggles
	AutoDeployPages bool
	GenerateSitemap bool
	UpdateRobots    bool
	GenerateFeed    bool

	// Application metadata
	Command string
	Debug   bool
	Version string
}
