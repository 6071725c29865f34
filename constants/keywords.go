package constants

// Fixed vocabulary tables for the German/English meeting-minutes document
// family. Initialized once, never mutated; safe for concurrent reads from
// parallel document pipelines.

// RejectionCues mark an explicit negative decision. Checked before
// ApprovalCues; rejection wins if both match.
var RejectionCues = []string{
	"abgelehnt",
	"nicht angenommen",
	"nicht beschlossen",
	"kein beschluss",
	"zurückgestellt",
	"vertagt",
	"ohne beschluss",
	"beschlussfassung entfällt",
}

// ApprovalCues mark an explicit positive decision.
var ApprovalCues = []string{
	"wird angenommen",
	"angenommen",
	"beschließt",
	"wird beschlossen",
	"mehrheitlich beschlossen",
	"beschluss gefasst",
}

// QuorumCues mark supermajority or unanimity requirements under which a
// simple yes>no majority is not enough to infer approval.
var QuorumCues = []string{
	"einstimmigkeit",
	"quorum",
	"2/3",
	"zwei drittel",
	"3/4",
	"drei viertel",
	"qualifizierte mehrheit",
}

// ResultAnnouncedPhrase flags a block as a decision record even without
// tallies or explicit decision language.
const ResultAnnouncedPhrase = "verkündet das beschlussergebnis"

// GarbageTitleTokens: a candidate title containing any of these is noise
// (signature markers, role titles, scan artifacts, page markers).
var GarbageTitleTokens = []string{
	"gez.",
	"seite ",
	"dsz_",
	"versammlungsleiter",
	"wohnungseigentümer",
	"verwaltungsbeiratsvorsitzender",
	"p60||",
	"clwti",
	"bmp",
	"altmp",
	"<<<page",
	"protokollabschrift der",
}

// TitleStopMarkers end title accumulation: a line starting with one of
// these begins a vote-result/background/eligibility section.
var TitleStopMarkers = []string{
	"abstimmungsergebnis",
	"ergebnis",
	"bemerkung",
	"sachverhalt",
	"begründung",
	"stimmberechtigt",
}
