package types

// FileType is a file of some element type. Text is the special case of a
// file of Char (spec.md §3.1).
type FileType struct {
	backendCache
	Elem   Type
	isText bool
}

func NewFile(elem Type) *FileType {
	return &FileType{Elem: elem}
}

// NewText returns a Text file type (file of Char).
func NewText() *FileType {
	return &FileType{Elem: CharType, isText: true}
}

// IsText reports whether f is the Text file-of-Char special case.
func (f *FileType) IsText() bool { return f.isText }

func (f *FileType) Kind() Kind {
	if f.isText {
		return Text
	}
	return File
}

func (f *FileType) String() string {
	if f.isText {
		return "Text"
	}
	return "file of " + f.Elem.String()
}

func (f *FileType) Equal(other Type) bool {
	o, ok := other.(*FileType)
	return ok && o.isText == f.isText && Equal(o.Elem, f.Elem)
}

func (f *FileType) BackendType() BackendRepr {
	return f.resolve(func() BackendRepr {
		if f.isText {
			return BackendRepr("text")
		}
		return BackendRepr("file<" + string(f.Elem.BackendType()) + ">")
	})
}
