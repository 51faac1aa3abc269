package submissionconst

// Submission statuses.
const (
	StatusPending = iota
	StatusApproved
	StatusRejected
)

// Contract errors.
const (
	// ErrNotFound is returned when the referenced submission is missing from
	// the storage.
	ErrNotFound = "submission does not exist"
	// ErrInvalidAccount is returned when the provided account is not a valid
	// 20-byte script hash.
	ErrInvalidAccount = "invalid account script hash"
	// ErrEmptyReference is returned on submit calls with an empty data
	// reference.
	ErrEmptyReference = "data reference must not be empty"
	// ErrDuplicateSubmission is returned when the submitter already has a
	// submission on the task.
	ErrDuplicateSubmission = "account already submitted to this task"
	// ErrNotPending is returned on vote attempts for already decided
	// submissions.
	ErrNotPending = "submission is already decided"
	// ErrTaskNotActive is returned on vote attempts for submissions of
	// completed or cancelled tasks.
	ErrTaskNotActive = "task is already completed or cancelled"
	// ErrSelfReview is returned when the submitter votes on their own
	// submission.
	ErrSelfReview = "submitter cannot review own submission"
	// ErrAlreadyVoted is returned when the reviewer has already voted on the
	// submission.
	ErrAlreadyVoted = "reviewer already voted on this submission"
	// ErrNotAuthorizedReviewer is returned when the voter is not authorized
	// to review the task.
	ErrNotAuthorizedReviewer = "account is not an authorized reviewer of the task"
)
