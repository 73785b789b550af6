package models

// Section of the blog repo a document lives in. Publishing a draft is
// nothing more than moving its file between these directories.
const (
	SectionPosts  = "posts"
	SectionDrafts = "drafts"
	SectionPages  = "pages"
)

// Document represents a content file in the blog repo: a front matter
// header followed by a free-form markdown body.
type Document struct {
	Path         string                 `json:"path"`
	Section      string                 `json:"section"`
	Title        string                 `json:"title"`
	Layout       string                 `json:"layout,omitempty"`
	Permalink    string                 `json:"permalink,omitempty"`
	FeatureImage string                 `json:"feature_img,omitempty"`
	Date         string                 `json:"date,omitempty"`
	Content      string                 `json:"content,omitempty"` // Raw content (backward compatibility)
	FrontMatter  map[string]interface{} `json:"frontmatter,omitempty"`
	Body         string                 `json:"body,omitempty"`
	Format       string                 `json:"format,omitempty"` // yaml, toml, json
	IsDirty      bool                   `json:"is_dirty"`
}
