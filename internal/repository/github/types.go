package github

type tagResponse struct {
	Name string `json:"name"`
}

type commitResponse struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

type compareResponse struct {
	Commits []commitResponse `json:"commits"`
}

type createReleaseRequest struct {
	TagName         string `json:"tag_name"`
	TargetCommitish string `json:"target_commitish,omitempty"`
	Name            string `json:"name"`
	Body            string `json:"body"`
	Draft           bool   `json:"draft"`
	Prerelease      bool   `json:"prerelease"`
}

type releaseResponse struct {
	ID      int64  `json:"id"`
	HTMLURL string `json:"html_url"`
}
