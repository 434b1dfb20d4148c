package model

// one immutable version record of a mirrored file.
type FileVersion struct {
	ComponentId string `json:"componentId"`
	Path string `json:"path"`
	// commit sha of this version on the github side.
	Sha string `json:"sha"`
	// unix timestamp of the commit.
	Date int64 `json:"date"`
	AuthorEmail string `json:"authorEmail"`
	DownloadURL string `json:"downloadUrl"`
}

func (v *FileVersion) ShortSha() string {
	if len(v.Sha) <= 8 { return v.Sha }
	return v.Sha[:8]
}
