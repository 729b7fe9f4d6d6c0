package port

// FileWalker lists the documents under a root that batch analysis should visit.
type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path    string
	RelPath string
	ModTime int64
	Size    int64
}

// DocumentReader extracts plain text from a document on disk.
type DocumentReader interface {
	ReadText(path string) (string, error)
}
