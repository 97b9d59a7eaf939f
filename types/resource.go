package types

import "time"

type CreateResourceRequest struct {
	Name        string `json:"name" binding:"required,max=128"`
	Category    string `json:"category" binding:"required,max=32"`
	Subcategory string `json:"subcategory" binding:"omitempty,max=32"`
	FileType    string `json:"file_type" binding:"required,max=16"`
	FileSize    int64  `json:"file_size" binding:"omitempty,min=0"`
	FilePath    string `json:"file_path" binding:"required,max=255"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

type ResourceResponse struct {
	ID          uint64      `json:"id,string"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Subcategory string      `json:"subcategory"`
	FileType    string      `json:"file_type"`
	FileSize    int64       `json:"file_size"`
	FilePath    string      `json:"file_path"`
	Description string      `json:"description"`
	Downloads   int64       `json:"downloads"`
	CreatedAt   time.Time   `json:"created_at"`
	Uploader    UserProfile `json:"uploader"`
}

type ListResourcesResponse struct {
	Resources []*ResourceResponse `json:"resources"`
}

type DownloadResponse struct {
	Downloads int64 `json:"downloads"`
}
