package models

// SiteConfig is the subset of the repo's _config.yml the CMS cares about.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
	BaseURL     string `yaml:"baseurl"`
	Permalink   string `yaml:"permalink"`
}

// CMSConfig lives in admin/config.yml inside the blog repo and describes
// how new documents get scaffolded.
type CMSConfig struct {
	MediaFolder  string     `yaml:"media_folder"`
	PublicFolder string     `yaml:"public_folder"`
	Scaffolds    []Scaffold `yaml:"scaffolds"`
}

type Scaffold struct {
	Name      string  `yaml:"name"`
	Label     string  `yaml:"label"`
	Section   string  `yaml:"section"`
	Extension string  `yaml:"extension"`
	Fields    []Field `yaml:"fields"`
}

type Field struct {
	Name    string      `yaml:"name"`
	Widget  string      `yaml:"widget"`
	Default interface{} `yaml:"default,omitempty"`
}
