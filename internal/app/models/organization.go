package models

// Faculty is the root of the two-level organizational hierarchy.
type Faculty struct {
	FID   int64  `json:"fid"`
	FName string `json:"fname"`
}

// Department belongs to exactly one faculty.
type Department struct {
	DID   int64  `json:"did"`
	DName string `json:"dname"`
	FID   int64  `json:"fid"`
}
