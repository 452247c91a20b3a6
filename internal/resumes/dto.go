package resumes

import "time"

// ResumeResponse is the outward-facing representation of a resume record.
type ResumeResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	FileName   string     `json:"fileName"`
	UploadDate time.Time  `json:"uploadDate"`
	ParsedData ParsedData `json:"parsedData"`
}

func toResponse(r Resume) ResumeResponse {
	return ResumeResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		FileName:   r.FileName,
		UploadDate: r.UploadedAt,
		ParsedData: r.Parsed,
	}
}
