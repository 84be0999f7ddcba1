package domain

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Post type tags used on reviews, calendar events and notifications to say
// which table a related id points into.
const (
	PostTypeStudent = "student_post"
	PostTypeTutor   = "tutor_post"
)

// Notification type tags. At most one notification per
// (user, type, related id) is created per calendar day.
const (
	NotifClassToday    = "class_today"
	NotifClassTomorrow = "class_tomorrow"
	NotifReviewRequest = "review_request"
)

// Mail template kinds understood by the mailer.
const (
	MailClassReminder       = "class-reminder"
	MailReviewReminder      = "review-reminder"
	MailBookingConfirmation = "booking-confirmation"
)
