package domain

// ReviewState classifies recorded reviewer decisions.
type ReviewState string

const (
	// ReviewApproved records a reviewer approving a content piece.
	ReviewApproved ReviewState = "approved"
	// ReviewRejected records a reviewer declining a content piece.
	ReviewRejected ReviewState = "rejected"
	// ReviewEdited records a reviewer submitting an edited revision.
	ReviewEdited ReviewState = "edited"
)
