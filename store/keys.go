// ABOUTME: Named storage keys, one JSON array (or object) per key
// ABOUTME: The recognized-key list gates snapshot import
package store

// Collection keys. Each holds a JSON array of entities, except KeyCurrentUser
// and KeyAppState which hold a single JSON object.
const (
	KeyLocations         = "locations"
	KeyProjects          = "projects"
	KeyContractors       = "contractors"
	KeyContractorReviews = "contractor_reviews"
	KeyQuotes            = "quotes"
	KeyDocuments         = "documents"
	KeyPhotos            = "photos"
	KeyUsers             = "users"
	KeyCurrentUser       = "current_user"
	KeyPayments          = "payments"
	KeyPaymentTemplates  = "payment_templates"
	KeyAppointments      = "appointments"
	KeyTasks             = "tasks_enhanced"
	KeyComments          = "comments"
	KeyNotifications     = "notifications"
	KeyNotificationPrefs = "notification_preferences"
	KeyActivityLog       = "activity_log"
	KeyAppState          = "app_state"
)

// RecognizedKeys lists every key snapshot import will accept. Anything else
// in an imported snapshot is ignored.
func RecognizedKeys() []string {
	return []string{
		KeyLocations,
		KeyProjects,
		KeyContractors,
		KeyContractorReviews,
		KeyQuotes,
		KeyDocuments,
		KeyPhotos,
		KeyUsers,
		KeyCurrentUser,
		KeyPayments,
		KeyPaymentTemplates,
		KeyAppointments,
		KeyTasks,
		KeyComments,
		KeyNotifications,
		KeyNotificationPrefs,
		KeyActivityLog,
	}
}
