package filesystem

// File - in memory representation of a file.
type File struct {
	path    string
	desc    string
	Content string
}

func NewFile(path, content string) *File {
	return &File{path: path, desc: "file", Content: content}
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Description() string {
	return f.desc
}

func (f *File) SetDescription(v string) *File {
	f.desc = v
	return f
}
