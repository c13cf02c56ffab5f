package domain

// TicketPriority orders SLA urgency from routine work to incidents.
type TicketPriority int

const (
	PriorityLow TicketPriority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// String returns the canonical label used in system messages and payloads.
func (p TicketPriority) String() string {
	switch p {
	case PriorityCritical:
		return "CRITICAL"
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

// SpecializationKey maps a priority to the lowercase specialization label
// agents carry. The labels match the keyword catalogs, which are Portuguese.
func (p TicketPriority) SpecializationKey() string {
	switch p {
	case PriorityCritical:
		return "critica"
	case PriorityHigh:
		return "alta"
	case PriorityMedium:
		return "media"
	default:
		return "baixa"
	}
}

// ParsePriority resolves a label back to a priority. Unknown labels report ok=false.
func ParsePriority(label string) (TicketPriority, bool) {
	switch label {
	case "LOW":
		return PriorityLow, true
	case "MEDIUM":
		return PriorityMedium, true
	case "HIGH":
		return PriorityHigh, true
	case "CRITICAL":
		return PriorityCritical, true
	}
	return PriorityLow, false
}
