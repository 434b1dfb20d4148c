package model

type ComponentStatus int

const (
	COMPONENT_PUBLIC ComponentStatus = 1
	COMPONENT_PRIVATE ComponentStatus = 2
	COMPONENT_ARCHIVED ComponentStatus = 4
)

func ValidComponentId(s string) bool {
	if len(s) <= 0 { return false }
	for _, k := range s {
		if !(('0' <= k && k <= '9') || ('a' <= k && k <= 'z') || k == '-') { return false }
	}
	return true
}

// a component is one project node on the site. a component is linked
// to exactly one external github repository; the mirror of that
// repository's file tree is what the file grid displays.
type Component struct {
	Id string `json:"id"`
	Title string `json:"title"`
	Description string `json:"description"`
	// user name of the owner.
	Owner string `json:"owner"`
	// the `{user}/{repo}` pair of the linked github repository.
	GithubUser string `json:"githubUser"`
	GithubRepo string `json:"githubRepo"`
	Status ComponentStatus `json:"status"`
	RegisterTime int64 `json:"regTime"`
}

func (c *Component) IsPublic() bool {
	return c.Status == COMPONENT_PUBLIC
}

// whether the file tree of this component is visible to the named
// viewer (empty name meaning an anonymous visitor).
func (c *Component) VisibleTo(username string) bool {
	if c.IsPublic() { return true }
	return len(username) > 0 && c.Owner == username
}

func (c *Component) GithubFullName() string {
	return c.GithubUser + "/" + c.GithubRepo
}
