package coggle

import "time"

// FolderResource is the server's JSON representation of a folder.
type FolderResource struct {
	ID        string           `json:"_id"`
	Name      string           `json:"name"`
	Children  []FolderResource `json:"children,omitempty"`
	CreatedAt wireTime         `json:"created_at,omitempty"`
	CreatedBy string           `json:"created_by,omitempty"`
	MyAccess  accessList       `json:"my_access,omitempty"`
}

// Folder groups diagrams. Folders are read-only in this client.
type Folder struct {
	ID        string
	Name      string
	Folders   []*Folder
	CreatedAt *time.Time
	CreatedBy string
	MyAccess  []string
}

// NewFolder builds a folder tree from its resource.
func NewFolder(res FolderResource) *Folder {
	folder := &Folder{
		ID:        res.ID,
		Name:      res.Name,
		Folders:   make([]*Folder, 0, len(res.Children)),
		CreatedAt: res.CreatedAt.Time(),
		CreatedBy: res.CreatedBy,
		MyAccess:  res.MyAccess,
	}
	for _, child := range res.Children {
		folder.Folders = append(folder.Folders, NewFolder(child))
	}
	return folder
}
