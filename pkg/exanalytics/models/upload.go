package models

import "time"

// UploadMetadata summarises the parsed sheet of an upload.
type UploadMetadata struct {
	TotalRows    int    `json:"totalRows"`
	TotalColumns int    `json:"totalColumns"`
	FileName     string `json:"fileName"`
	SheetName    string `json:"sheetName,omitempty"`
}

// UploadRecord is the parsed content of an uploaded spreadsheet.
type UploadRecord struct {
	ID       string         `json:"id,omitempty"`
	UploadID string         `json:"uploadId,omitempty"`
	Headers  []string       `json:"headers"`
	Rows     []RawRow       `json:"rows"`
	Metadata UploadMetadata `json:"metadata"`
}

// HasHeader reports whether name is one of the upload's column headers.
func (u *UploadRecord) HasHeader(name string) bool {
	if u == nil {
		return false
	}
	for _, h := range u.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// UploadStatus is the server-side processing state of an upload.
type UploadStatus string

const (
	UploadProcessing UploadStatus = "PROCESSING"
	UploadCompleted  UploadStatus = "COMPLETED"
	UploadFailed     UploadStatus = "FAILED"
)

// Upload is an uploaded file as returned by the API.
type Upload struct {
	ID           string         `json:"id"`
	FileName     string         `json:"fileName"`
	OriginalName string         `json:"originalName"`
	FileSize     int64          `json:"fileSize"`
	UserID       string         `json:"userId"`
	ProjectID    string         `json:"projectId"`
	Status       UploadStatus   `json:"status"`
	UploadedAt   time.Time      `json:"uploadedAt"`
	ProcessedAt  *time.Time     `json:"processedAt,omitempty"`
	Data         []UploadRecord `json:"data,omitempty"`
	Charts       []ChartRecord  `json:"charts,omitempty"`
}

// Record returns the first parsed sheet of the upload, or nil.
func (u *Upload) Record() *UploadRecord {
	if u == nil || len(u.Data) == 0 {
		return nil
	}
	return &u.Data[0]
}

// ProjectType distinguishes personal from shared projects.
type ProjectType string

const (
	ProjectSingle       ProjectType = "SINGLE"
	ProjectOrganization ProjectType = "ORGANIZATION"
)

// Project groups uploads.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Type        ProjectType     `json:"type"`
	CreatorID   string          `json:"creatorId"`
	Creator     *User           `json:"creator,omitempty"`
	Members     []ProjectMember `json:"members,omitempty"`
	Role        ProjectRole     `json:"role,omitempty"`
	MemberCount int             `json:"memberCount,omitempty"`
	UploadCount int             `json:"uploadCount,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// User is an authenticated account.
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// AuthSession is the result of a login or registration.
type AuthSession struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
