package models

// StudentSnapshot is a consistent view of everything the chat assistant
// may answer from: the student's account, their applications with
// scholarship detail, and the currently available scholarships.
// All three parts are read in a single transaction.
type StudentSnapshot struct {
	User                  *User
	Applications          []*ApplicationDetail
	AvailableScholarships []*Scholarship
}
