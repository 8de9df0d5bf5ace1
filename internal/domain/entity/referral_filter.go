package entity

// ReferralFilter is a domain-level filter for directory queries.
// Used by repository layer to avoid coupling with delivery DTOs.
// Every field is optional; zero values mean "no constraint". All supplied
// fields combine with AND.
type ReferralFilter struct {
	OfficeID           *int       // Exact match
	DoctorName         string     // Substring match (ILIKE)
	Type               DoctorType // Exact match
	Gender             Gender     // Exact match
	WaitTime           WaitTime   // Exact match
	OnlineAppointments *bool      // Exact match
	SameDayService     *bool      // Exact match
	Search             string     // Substring match against doctor name OR office name
}
