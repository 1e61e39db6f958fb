package files

// File types.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// RootParentID marks a file attached directly under the user's root.
const RootParentID int64 = 0

// File is a stored file, image or folder record.
// LocalPath is empty for folders and never exposed to clients.
type File struct {
	ID        int64
	UserID    string
	Name      string
	Type      string
	ParentID  int64
	IsPublic  bool
	LocalPath string
}

// Projection is the client-visible subset of a File record.
type Projection struct {
	ID       int64  `json:"id"`
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPublic bool   `json:"isPublic"`
	ParentID int64  `json:"parentId"`
}

// Project strips internal fields from a File record.
func (f *File) Project() Projection {
	return Projection{
		ID:       f.ID,
		UserID:   f.UserID,
		Name:     f.Name,
		Type:     f.Type,
		IsPublic: f.IsPublic,
		ParentID: f.ParentID,
	}
}

func validType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}
