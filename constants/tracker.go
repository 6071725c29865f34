package constants

// TrackerStatus is the canonical status for rows in the action tracker.
type TrackerStatus string

// Stable values (exported verbatim to the tracker sheet).
const (
	StatusNew             TrackerStatus = "Neu / offen"
	StatusInReview        TrackerStatus = "In Prüfung"
	StatusCommissioned    TrackerStatus = "Beauftragt"
	StatusInProgress      TrackerStatus = "In Umsetzung"
	StatusWaitingManager  TrackerStatus = "Wartet auf Verwalter"
	StatusWaitingProvider TrackerStatus = "Wartet auf Dienstleister"
	StatusDone            TrackerStatus = "Erledigt"
	StatusBlocked         TrackerStatus = "Blockiert"
)

// TrackerStatuses lists all statuses in workflow order.
var TrackerStatuses = []TrackerStatus{
	StatusNew,
	StatusInReview,
	StatusCommissioned,
	StatusInProgress,
	StatusWaitingManager,
	StatusWaitingProvider,
	StatusDone,
	StatusBlocked,
}

// DefaultOwner is the initial owner assigned to new tracker rows.
const DefaultOwner = "Verwalter"
