package model

import "time"

// Application is the normalized wire shape of a scholarship application
// record. Booleans are real JSON booleans and timestamps are RFC 3339
// strings or null; the store-native representation lives in StoredApplication.
type Application struct {
	ID               int        `json:"id"`
	Name             string     `json:"name"`
	CourseName       string     `json:"course_name"`
	YearOfStudy      int        `json:"year_of_study"`
	CreatedAt        *time.Time `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
	StudentSalaried  bool       `json:"student_salaried"`
	FatherAlive      bool       `json:"father_alive"`
	FatherWorking    bool       `json:"father_working"`
	FatherOccupation *string    `json:"father_occupation"`
	MotherAlive      bool       `json:"mother_alive"`
	MotherWorking    bool       `json:"mother_working"`
	MotherOccupation *string    `json:"mother_occupation"`
	MarksheetUpload  *string    `json:"marksheet_upload"`
	AadharNo         string     `json:"aadhar_no"`
	CapID            string     `json:"cap_id"`
}

// StoredApplication mirrors one row of the applications table. The five
// boolean-valued columns are smallints (0/1) in the store and are coerced
// at the service boundary.
type StoredApplication struct {
	ID               int
	Name             string
	CourseName       string
	YearOfStudy      int
	CreatedAt        *time.Time
	UpdatedAt        *time.Time
	StudentSalaried  int16
	FatherAlive      int16
	FatherWorking    int16
	FatherOccupation *string
	MotherAlive      int16
	MotherWorking    int16
	MotherOccupation *string
	MarksheetUpload  *string
	AadharNo         string
	CapID            string
}

// Normalize coerces the store-native row into the wire shape. Timestamps
// are shifted to UTC so they serialize as a stable ISO form.
func (s *StoredApplication) Normalize() *Application {
	return &Application{
		ID:               s.ID,
		Name:             s.Name,
		CourseName:       s.CourseName,
		YearOfStudy:      s.YearOfStudy,
		CreatedAt:        toUTC(s.CreatedAt),
		UpdatedAt:        toUTC(s.UpdatedAt),
		StudentSalaried:  s.StudentSalaried != 0,
		FatherAlive:      s.FatherAlive != 0,
		FatherWorking:    s.FatherWorking != 0,
		FatherOccupation: s.FatherOccupation,
		MotherAlive:      s.MotherAlive != 0,
		MotherWorking:    s.MotherWorking != 0,
		MotherOccupation: s.MotherOccupation,
		MarksheetUpload:  s.MarksheetUpload,
		AadharNo:         s.AadharNo,
		CapID:            s.CapID,
	}
}

func toUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// TrackQuery is the query-string payload of a lookup request. Presence is
// enforced by binding; the digit-only rule is enforced by the service.
type TrackQuery struct {
	ID string `form:"id" binding:"required"`
}
