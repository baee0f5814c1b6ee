package walk

// Node is a directory discovered by a Walker.
type Node struct {
	// Name is the base name of the directory.
	Name string `json:"name"`
	// Path is the absolute path of the directory.
	Path string `json:"path"`
	// RelPath is the slash-separated path relative to the scan root.
	RelPath string `json:"rel_path"`
	// Size is the recursive sum of all readable regular files below the directory.
	Size int64 `json:"size"`
	// Depth is the number of levels below the scan root (0 = immediate child).
	Depth int `json:"depth"`
}
